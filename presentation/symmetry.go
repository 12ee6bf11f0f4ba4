package presentation

import (
	"github.com/katalvlaran/fourcolor/internal/verifyerr"
)

// CheckSymmetry verifies an "S k epsilon level line" line: k+1 is the
// hub-spoke anchor, epsilon selects OutletForced (0) or ReflForced (1),
// and (level,line) identify a previously registered symmetry by the
// presentation line that defined it. Grounded on CheckSymmetry.
func (e *Engine) CheckSymmetry(line string, lev, lineno int) error {
	fs := fields(line)
	k, err := atoiField(fs, 1, lineno)
	if err != nil {
		return err
	}
	epsilon, err := atoiField(fs, 2, lineno)
	if err != nil {
		return err
	}
	level, err := atoiField(fs, 3, lineno)
	if err != nil {
		return err
	}
	ref, err := atoiField(fs, 4, lineno)
	if err != nil {
		return err
	}

	a := &e.Axles[lev]
	if k < 0 || k > a.Low[0] || epsilon < 0 || epsilon > 1 {
		return verifyerr.New(verifyerr.CategoryFormat, lineno, "illegal symmetry").WithLine(lineno)
	}

	idx := -1
	for i := range e.Sym {
		if e.Sym[i].Number == ref {
			idx = i
			break
		}
	}
	if idx < 0 {
		return verifyerr.New(verifyerr.CategoryMathematicalClaim, lineno, "no symmetry as requested").WithLine(lineno)
	}
	t := &e.Sym[idx]
	if t.NoLines != level+1 {
		return verifyerr.New(verifyerr.CategoryMathematicalClaim, lineno, "level mismatch").WithLine(lineno)
	}

	if epsilon == 0 {
		if t.Forced(a, k+1) != 1 {
			return verifyerr.New(verifyerr.CategoryMathematicalClaim, lineno, "invalid symmetry").WithLine(lineno)
		}
	} else {
		if t.ReflForced(a, k+1) != 1 {
			return verifyerr.New(verifyerr.CategoryMathematicalClaim, lineno, "invalid reflected symmetry").WithLine(lineno)
		}
	}
	return nil
}
