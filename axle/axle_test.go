// Package axle_test exercises adjacency-matrix construction for a minimal
// degree-5 axle whose every hub neighbour (coordinates 1..deg) is pinned to
// its minimum degree, forcing a k=5 fan at every spoke.
package axle_test

import (
	"testing"

	"github.com/katalvlaran/fourcolor/axle"
	"github.com/katalvlaran/fourcolor/internal/limits"
	"github.com/stretchr/testify/require"
)

func minimalAxle(deg int) *axle.Axle {
	a := &axle.Axle{}
	a.Low[0], a.Upp[0] = deg, deg
	for i := 1; i <= 5*deg; i++ {
		a.Low[i], a.Upp[i] = 5, limits.Infty
	}
	for i := 1; i <= deg; i++ {
		a.Low[i], a.Upp[i] = 5, 5
	}
	return a
}

func TestBuildAdjMat_Degree5Fan(t *testing.T) {
	a := minimalAxle(5)
	m := axle.BuildAdjMat(a)

	require.Equal(t, 1, m.At(0, 5))
	require.Equal(t, 5, m.At(1, 0))
	require.Equal(t, 0, m.At(5, 1))
	require.Equal(t, 10, m.At(1, 5))
	require.Equal(t, 5, m.At(10, 1))
	require.Equal(t, 1, m.At(5, 10))

	require.Equal(t, 6, m.At(1, 10))
	require.Equal(t, 1, m.At(10, 6))
	require.Equal(t, 10, m.At(6, 1))
}

func TestAxle_CopyIndependence(t *testing.T) {
	a := minimalAxle(5)
	b := a.Copy()
	b.Low[1] = 9
	require.Equal(t, 5, a.Low[1])
	require.Equal(t, 5, a.Degree())
}

func TestAxle_String_SkipsDefaultInterval(t *testing.T) {
	a := minimalAxle(5)
	a.Low[3], a.Upp[3] = 6, 7
	s := a.String()
	require.Contains(t, s, "3:67")
	require.NotContains(t, s, "6:5") // coordinate 6 keeps the default [5,Infty) interval
}
