package presentation_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/fourcolor/internal/narrate"
	"github.com/katalvlaran/fourcolor/presentation"
	"github.com/stretchr/testify/require"
)

func TestCheckCondition_NarrowsAxleAndDerivesChild(t *testing.T) {
	e := presentation.NewEngine(7)
	p := narrate.New(&bytes.Buffer{}, narrate.PRTALL)

	require.NoError(t, e.CheckCondition("C 1 6", 0, 1, p))
	require.Equal(t, 6, e.Axles[1].Low[1])
	require.Equal(t, 5, e.Axles[0].Upp[1])
	require.Len(t, e.Sym, 1)
	require.Equal(t, 1, e.Sym[0].NoLines)
}

func TestCheckCondition_RejectsFanVertexOutOfRange(t *testing.T) {
	e := presentation.NewEngine(7)
	p := narrate.New(&bytes.Buffer{}, narrate.PRTALL)
	err := e.CheckCondition("C 99 6", 0, 1, p)
	require.Error(t, err)
}

func TestCheckSymmetry_UnknownReferenceFails(t *testing.T) {
	e := presentation.NewEngine(7)
	err := e.CheckSymmetry("S 0 0 0 42", 0, 2)
	require.Error(t, err)
}

func TestPopLevel_RemovesDeeperSymmetries(t *testing.T) {
	e := presentation.NewEngine(7)
	p := narrate.New(&bytes.Buffer{}, narrate.PRTALL)
	require.NoError(t, e.CheckCondition("C 1 6", 0, 1, p))
	require.Len(t, e.Sym, 1)
	e.PopLevel(0, p)
	require.Empty(t, e.Sym)
}
