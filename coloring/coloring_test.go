package coloring_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/fourcolor/coloring"
	"github.com/katalvlaran/fourcolor/confmat"
	"github.com/katalvlaran/fourcolor/internal/lineio"
	"github.com/katalvlaran/fourcolor/skeleton"
	"github.com/stretchr/testify/require"
)

const trivialRecord = `trivial
6 5 2 0
0
1 3 2 6 5
2 3 3 6 1
3 3 4 6 2
4 3 5 6 3
5 3 1 6 4
6 5 1 2 3 4 5
0 0 0 0 0 0

`

func TestFindLive_TrivialExtendableCount(t *testing.T) {
	rd := lineio.New(strings.NewReader(trivialRecord))
	cfg, err := confmat.ReadNext(rd)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	edgeno := skeleton.Number(cfg)
	tbl, err := skeleton.Build(cfg, edgeno)
	require.NoError(t, err)

	_, extent := coloring.FindLive(tbl.Angle, cfg.Ring, tbl.Edges)
	require.Equal(t, cfg.Extendable, extent)
}

func TestCode_PermutationInvariance(t *testing.T) {
	power := coloring.Power(8)
	bigno := coloring.BigNo(5, power)
	a := []int64{0, 1, 2, 4, 1, 2}
	b := []int64{0, 2, 4, 1, 2, 4} // 1->2, 2->4, 4->1 permutation of a
	require.Equal(t, coloring.Code(a, power, 5, bigno), coloring.Code(b, power, 5, bigno))
}
