// Package subconf_test exercises edgelist construction against the same
// minimal degree-5 axle axle_test uses, and end-to-end root-edge matching
// for the trivial single-vertex question it induces on itself.
package subconf_test

import (
	"testing"

	"github.com/katalvlaran/fourcolor/axle"
	"github.com/katalvlaran/fourcolor/internal/limits"
	"github.com/katalvlaran/fourcolor/question"
	"github.com/katalvlaran/fourcolor/subconf"
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

func TestBuild_HasSpokeBucket(t *testing.T) {
	a := minimalAxle(5)
	e, err := subconf.Build(a)
	require.NoError(t, err)
	require.NotEmpty(t, e.Pairs(5, 5))
}

func TestRootedSubConf_TwoAnchorsOnly(t *testing.T) {
	a := minimalAxle(5)
	adjmat := axle.BuildAdjMat(a)

	// A two-entry question (no closure beyond the anchors) always
	// succeeds: there is nothing left to verify but injectivity and the
	// well-positioned check, and x, y here don't trip it.
	q := &question.Question{Queries: []question.Query{
		{Z: 1, Xi: 5},
		{Z: 2, Xi: 5, U: 6, V: 5},
		{U: -1},
	}}

	image, ok := subconf.RootedSubConf(&a.Upp, adjmat, q, 3, 4, true)
	require.True(t, ok)
	require.Equal(t, 1, image[0])
	require.Equal(t, 3, image[1])
	require.Equal(t, 4, image[2])
}
