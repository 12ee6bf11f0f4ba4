package matching_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/fourcolor/coloring"
	"github.com/katalvlaran/fourcolor/confmat"
	"github.com/katalvlaran/fourcolor/internal/lineio"
	"github.com/katalvlaran/fourcolor/matching"
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

// TestClosure_TrivialIsDReducible reproduces spec §8.2 scenario 1: the
// degree-5 wheel configuration must close to nlive=0 (D-reducible).
func TestClosure_TrivialIsDReducible(t *testing.T) {
	rd := lineio.New(strings.NewReader(trivialRecord))
	cfg, err := confmat.ReadNext(rd)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	edgeno := skeleton.Number(cfg)
	tbl, err := skeleton.Build(cfg, edgeno)
	require.NoError(t, err)

	live, extent := coloring.FindLive(tbl.Angle, cfg.Ring, tbl.Edges)
	require.Equal(t, cfg.Extendable, extent)

	power := coloring.Power(cfg.Ring + 1)
	nlive := live.Count()
	real := make([]byte, matching.NChar(cfg.Ring)+1)
	for i := range real {
		real[i] = 255
	}

	for pass := 0; pass < 2*len(live)+2; pass++ {
		_, err := matching.TestMatch(cfg.Ring, power, live, real, matching.NChar(cfg.Ring))
		require.NoError(t, err)
		newNLive, cont := matching.UpdateLive(live, nlive)
		nlive = newNLive
		if !cont {
			break
		}
	}

	require.Equal(t, 0, nlive)
}
