// Package confmat_test exercises ConfigurationIO parsing and invariant
// checks against the trivial configuration of spec §8.2 scenario 1.
package confmat_test

import (
	"io"
	"strings"
	"testing"

	"github.com/katalvlaran/fourcolor/confmat"
	"github.com/katalvlaran/fourcolor/internal/lineio"
	"github.com/stretchr/testify/require"
)

// trivialRecord is a hand-built record: n=6, r=5, a degree-5 interior
// vertex (6) surrounded by the 5-cycle ring 1..5.
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

func TestReadNext_Trivial(t *testing.T) {
	rd := lineio.New(strings.NewReader(trivialRecord))
	cfg, err := confmat.ReadNext(rd)
	require.NoError(t, err)
	require.Equal(t, "trivial", cfg.Name)
	require.Equal(t, 6, cfg.N)
	require.Equal(t, 5, cfg.Ring)
	require.Equal(t, 2, cfg.Extendable)
	require.Equal(t, 5, cfg.Degree[6])
}

func TestReadNext_EOF(t *testing.T) {
	rd := lineio.New(strings.NewReader(""))
	_, err := confmat.ReadNext(rd)
	require.ErrorIs(t, err, io.EOF)
}

func TestValidate_Trivial(t *testing.T) {
	rd := lineio.New(strings.NewReader(trivialRecord))
	cfg, err := confmat.ReadNext(rd)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
}

func TestValidate_RingTooLarge(t *testing.T) {
	cfg := &confmat.Configuration{N: 4, Ring: 4}
	err := cfg.Validate()
	require.Error(t, err)
}
