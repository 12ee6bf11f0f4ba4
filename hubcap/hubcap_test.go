package hubcap_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/fourcolor/axle"
	"github.com/katalvlaran/fourcolor/hubcap"
	"github.com/katalvlaran/fourcolor/outlet"
	"github.com/stretchr/testify/require"
)

func TestTotalCost_SimpleCrossCover(t *testing.T) {
	// Degree-7 hub: edges 1-2, 3-4, 5-6, 7-1 cover every hub edge exactly
	// once via cross members, each worth 1; total must equal 4 and the
	// (H2) bound 20*(7-6)+1 = 21 is nowhere near exceeded.
	members := []hubcap.Member{
		{X: 1, Y: 2, V: 1},
		{X: 3, Y: 4, V: 1},
		{X: 5, Y: 6, V: 1},
		{X: 7, Y: 1, V: 1},
	}
	total, err := hubcap.TotalCost(7, members, 10)
	require.NoError(t, err)
	require.Equal(t, 4, total)
}

func TestTotalCost_UncoveredEdgeFails(t *testing.T) {
	members := []hubcap.Member{{X: 1, Y: 2, V: 1}}
	_, err := hubcap.TotalCost(7, members, 10)
	require.Error(t, err)
}

func TestTotalCost_SelfLoopDoublesCost(t *testing.T) {
	members := []hubcap.Member{
		{X: 1, Y: 1, V: 3},
		{X: 2, Y: 2, V: 0},
		{X: 3, Y: 3, V: 0},
		{X: 4, Y: 4, V: 0},
		{X: 5, Y: 5, V: 0},
		{X: 6, Y: 6, V: 0},
		{X: 7, Y: 7, V: 0},
	}
	total, err := hubcap.TotalCost(7, members, 10)
	require.NoError(t, err)
	require.Equal(t, 6, total)
}

func TestTotalCost_ExceedsH2(t *testing.T) {
	members := []hubcap.Member{
		{X: 1, Y: 1, V: 15},
		{X: 2, Y: 2, V: 0},
		{X: 3, Y: 3, V: 0},
		{X: 4, Y: 4, V: 0},
		{X: 5, Y: 5, V: 0},
		{X: 6, Y: 6, V: 0},
		{X: 7, Y: 7, V: 0},
	}
	_, err := hubcap.TotalCost(7, members, 10)
	require.Error(t, err)
}

func TestParseMembers(t *testing.T) {
	members, err := hubcap.ParseMembers("H 7 (1,2,3) (4,4,1)", 10)
	require.NoError(t, err)
	require.Equal(t, []hubcap.Member{{X: 1, Y: 2, V: 3}, {X: 4, Y: 4, V: 1}}, members)
}

func TestCheckBound_NoOutletsInequalityHoldsImmediately(t *testing.T) {
	a := &axle.Axle{}
	a.Low[0], a.Upp[0] = 7, 7
	s := []int{99}
	err := hubcap.CheckBound(a, nil, s, 0, 10, nil, nil)
	require.NoError(t, err)
}

func TestCheckHubcap_DumpModeWritesNothingForEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	err := hubcap.CheckHubcap(nil, []outlet.Outlet{}, "", 10, &buf, nil, nil)
	require.NoError(t, err)
	require.Empty(t, buf.String())
}
