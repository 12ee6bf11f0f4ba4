package skeleton_test

import (
	"strings"
	"testing"

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

func loadTrivial(t *testing.T) *confmat.Configuration {
	t.Helper()
	rd := lineio.New(strings.NewReader(trivialRecord))
	cfg, err := confmat.ReadNext(rd)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestNumber_RingFirst(t *testing.T) {
	cfg := loadTrivial(t)
	edgeno := skeleton.Number(cfg)
	for i := 1; i <= cfg.Ring; i++ {
		u := i - 1
		if i == 1 {
			u = cfg.Ring
		}
		require.Equal(t, i, edgeno[u][i])
	}
}

func TestBuild_AngleTablesNonEmpty(t *testing.T) {
	cfg := loadTrivial(t)
	edgeno := skeleton.Number(cfg)
	tbl, err := skeleton.Build(cfg, edgeno)
	require.NoError(t, err)
	require.Equal(t, 3*cfg.N-3-cfg.Ring, tbl.Edges)

	total := 0
	for c := 1; c <= tbl.Edges; c++ {
		total += len(tbl.Angle[c])
	}
	require.Greater(t, total, 0)
}
