// Package question_test exercises anchor selection and the NVerts/Ring
// bookkeeping question.Get embeds in its second entry, using the trivial
// single-interior-vertex configuration of spec §8.2 scenario 1.
package question_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/fourcolor/confmat"
	"github.com/katalvlaran/fourcolor/internal/lineio"
	"github.com/katalvlaran/fourcolor/question"
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

func TestGet_AnchorsAndBookkeeping(t *testing.T) {
	rd := lineio.New(strings.NewReader(trivialRecord))
	cfg, err := confmat.ReadNext(rd)
	require.NoError(t, err)

	q := question.Get(cfg)
	require.Equal(t, cfg.N, q.NVerts)
	require.Equal(t, cfg.Ring, q.Ring)
	require.Equal(t, cfg.N, q.Queries[1].U)
	require.Equal(t, cfg.Ring, q.Queries[1].V)

	require.Equal(t, 6, q.Queries[0].Z)
	require.Equal(t, cfg.Degree[6], q.Queries[0].Xi)

	require.Equal(t, -1, q.Queries[len(q.Queries)-1].U)
}
