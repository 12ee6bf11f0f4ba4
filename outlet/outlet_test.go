// Package outlet_test exercises outlet matching against a trivial degree-5
// axle: on the default [5,Infty) intervals an outlet is Permitted but not
// Forced, and narrowing a coordinate to the outlet's interval forces it.
package outlet_test

import (
	"testing"

	"github.com/katalvlaran/fourcolor/axle"
	"github.com/katalvlaran/fourcolor/internal/limits"
	"github.com/katalvlaran/fourcolor/outlet"
	"github.com/stretchr/testify/require"
)

func trivialAxle(deg int) *axle.Axle {
	a := &axle.Axle{}
	a.Low[0], a.Upp[0] = deg, deg
	for i := 1; i <= 5*deg; i++ {
		a.Low[i], a.Upp[i] = 5, limits.Infty
	}
	return a
}

func TestOutlet_PermittedNotForced(t *testing.T) {
	a := trivialAxle(5)
	o := outlet.Outlet{Number: 1, Value: 1, NoLines: 1}
	o.Pos[0], o.Low[0], o.Upp[0] = 1, 7, 9

	require.Equal(t, 1, o.Permitted(a, 1))
	require.Equal(t, 0, o.Forced(a, 1))
}

func TestOutlet_ForcedWhenIntervalPinned(t *testing.T) {
	a := trivialAxle(5)
	a.Low[1], a.Upp[1] = 7, 7
	o := outlet.Outlet{Number: 1, Value: 1, NoLines: 1}
	o.Pos[0], o.Low[0], o.Upp[0] = 1, 6, 8

	require.Equal(t, 1, o.Forced(a, 1))
}

func TestOutlet_NotPermittedWhenDisjoint(t *testing.T) {
	a := trivialAxle(5)
	a.Low[1], a.Upp[1] = 9, limits.Infty
	o := outlet.Outlet{Number: 1, Value: 1, NoLines: 1}
	o.Pos[0], o.Low[0], o.Upp[0] = 1, 5, 6

	require.Equal(t, 0, o.Permitted(a, 1))
}
