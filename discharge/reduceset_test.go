package discharge_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/fourcolor/discharge"
	"github.com/katalvlaran/fourcolor/internal/narrate"
	"github.com/katalvlaran/fourcolor/presentation"
	"github.com/stretchr/testify/require"
)

func TestLoadUnavoidableSet_EmptyInputYieldsEmptySet(t *testing.T) {
	rs, err := discharge.LoadUnavoidableSet(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, rs.Configs)
	require.Empty(t, rs.Questions)
}

func TestReduce_EmptySetNeverMatches(t *testing.T) {
	rs, err := discharge.LoadUnavoidableSet(strings.NewReader(""))
	require.NoError(t, err)

	pe := presentation.NewEngine(6)
	p := narrate.New(&bytes.Buffer{}, narrate.PRTALL)

	ok, err := rs.Reduce(&pe.Axles[0], 1, p)
	require.NoError(t, err)
	require.False(t, ok)
}
