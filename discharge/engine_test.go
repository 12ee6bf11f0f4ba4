package discharge_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/fourcolor/discharge"
	"github.com/katalvlaran/fourcolor/internal/narrate"
	"github.com/stretchr/testify/require"
)

func newPrinter() *narrate.Printer {
	return narrate.New(&bytes.Buffer{}, narrate.PRTALL)
}

func TestVerifyPresentation_InvalidDegreeHeader(t *testing.T) {
	pres := strings.NewReader("Degreefoo\n")
	err := discharge.VerifyPresentation(pres, strings.NewReader(""), strings.NewReader(""), nil, newPrinter(), 0, narrate.PRTALL)
	require.Error(t, err)
}

func TestVerifyPresentation_DegreeOutOfRange(t *testing.T) {
	pres := strings.NewReader("Degree3\n")
	err := discharge.VerifyPresentation(pres, strings.NewReader(""), strings.NewReader(""), nil, newPrinter(), 0, narrate.PRTALL)
	require.Error(t, err)
}

func TestVerifyPresentation_WrongLevelPrefix(t *testing.T) {
	pres := strings.NewReader("Degree6\nL1 R\n")
	err := discharge.VerifyPresentation(pres, strings.NewReader(""), strings.NewReader(""), nil, newPrinter(), 0, narrate.PRTALL)
	require.Error(t, err)
}

func TestVerifyPresentation_ReducibilityFailureAborts(t *testing.T) {
	pres := strings.NewReader("Degree6\nL0 R\n")
	err := discharge.VerifyPresentation(pres, strings.NewReader(""), strings.NewReader(""), nil, newPrinter(), 0, narrate.PRTALL)
	require.Error(t, err)
	require.Contains(t, err.Error(), "reducibility failed")
}

func TestVerifyPresentation_MissingQEDAborts(t *testing.T) {
	// The presentation stops after its header, so replay aborts on the
	// "unexpected end of input" path before any instruction or Q.E.D. line
	// could be read.
	pres := strings.NewReader("Degree6\n")
	err := discharge.VerifyPresentation(pres, strings.NewReader(""), strings.NewReader(""), nil, newPrinter(), 0, narrate.PRTALL)
	require.Error(t, err)
}

func TestVerifyPresentation_InvalidInstructionLetter(t *testing.T) {
	pres := strings.NewReader("Degree6\nL0 X\n")
	err := discharge.VerifyPresentation(pres, strings.NewReader(""), strings.NewReader(""), nil, newPrinter(), 0, narrate.PRTALL)
	require.Error(t, err)
}
