package presentation

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/fourcolor/axle"
	"github.com/katalvlaran/fourcolor/internal/limits"
	"github.com/katalvlaran/fourcolor/internal/narrate"
	"github.com/katalvlaran/fourcolor/internal/verifyerr"
	"github.com/katalvlaran/fourcolor/outlet"
)

type condition struct {
	n, m int
}

// Engine owns one presentation replay's axle stack, condition chain, and
// registered-symmetry table. Grounded on the axles/sym/cond arrays
// main() and CheckCondition hold across a discharge.c run.
type Engine struct {
	Axles [limits.MaxLev + 1]axle.Axle
	Sym   []outlet.Outlet
	cond  [limits.MaxLev + 1]condition
}

// NewEngine returns an Engine with axles[0] the trivial degree-deg hub
// axle (every non-hub coordinate at its default [5,Infty) interval).
func NewEngine(deg int) *Engine {
	e := &Engine{}
	e.Axles[0].Low[0], e.Axles[0].Upp[0] = deg, deg
	for i := 1; i <= 5*deg; i++ {
		e.Axles[0].Low[i] = 5
		e.Axles[0].Upp[i] = limits.Infty
	}
	return e
}

func fields(line string) []string {
	return strings.Fields(line)
}

func atoiField(fs []string, i int, lineno int) (int, error) {
	if i >= len(fs) {
		return 0, verifyerr.New(verifyerr.CategoryFormat, lineno, "syntax error").WithLine(lineno)
	}
	v, err := strconv.Atoi(fs[i])
	if err != nil {
		return 0, verifyerr.New(verifyerr.CategoryFormat, lineno, "syntax error").WithLine(lineno)
	}
	return v, nil
}

// CheckCondition verifies a "C n m" line at level lev against
// e.Axles[lev] ("A" in [D]): n is a vertex coordinate, m a signed bound
// (m>0 a new lower bound, m<0 the negated new upper bound). It narrows
// A's interval at n, derives the child axle e.Axles[lev+1], and —
// unless the condition chain built so far touches a fan vertex —
// registers the chain as a symmetry. Grounded on CheckCondition.
func (e *Engine) CheckCondition(line string, lev, lineno int, p *narrate.Printer) error {
	fs := fields(line)
	n, err := atoiField(fs, 1, lineno)
	if err != nil {
		return err
	}
	m, err := atoiField(fs, 2, lineno)
	if err != nil {
		return err
	}

	a := &e.Axles[lev]
	deg := a.Low[0]
	if n < 1 || n > 5*deg {
		return verifyerr.New(verifyerr.CategoryFormat, lineno, "invalid vertex in condition").WithLine(lineno)
	}
	if m < -8 || m > 9 || (m > -5 && m < 6) {
		return verifyerr.New(verifyerr.CategoryFormat, lineno, "invalid condition").WithLine(lineno)
	}
	j := (n - 1) / deg
	i := (n-1)%deg + 1
	if n > 2*deg && (a.Low[i] != a.Upp[i] || a.Low[i] < j+4) {
		return verifyerr.New(verifyerr.CategoryStructuralInvariant, lineno, "condition not compatible with A").WithLine(lineno)
	}

	e.Axles[lev+1] = *a
	child := &e.Axles[lev+1]
	if m > 0 {
		if a.Low[n] >= m || m > a.Upp[n] {
			return verifyerr.New(verifyerr.CategoryStructuralInvariant, lineno, "invalid lower bound in condition").WithLine(lineno)
		}
		a.Upp[n] = m - 1
		child.Low[n] = m
	} else {
		if a.Low[n] > -m || -m >= a.Upp[n] {
			return verifyerr.New(verifyerr.CategoryStructuralInvariant, lineno, "invalid upper bound in condition").WithLine(lineno)
		}
		a.Low[n] = 1 - m
		child.Upp[n] = -m
	}

	// The chain entry for this level is written before the fan-vertex
	// scan below, not after: the scan must see this level's own just-
	// parsed condition to decide whether the chain through it is still
	// symmetry-eligible, not the still-empty slot a naive reproduction
	// of the original's static-array bookkeeping would read.
	e.cond[lev] = condition{n: n, m: m}
	e.cond[lev+1] = condition{}

	good := true
	for i := 0; i <= lev; i++ {
		if e.cond[i].n > 2*deg || e.cond[i].n < 1 {
			good = false
			break
		}
	}
	if good {
		if len(e.Sym) >= limits.MaxSym {
			return verifyerr.New(verifyerr.CategoryResource, lineno, "too many symmetries").WithLine(lineno)
		}
		t := outlet.Outlet{Number: lineno, Value: 1, NoLines: lev + 1}
		p.Basef("adding symmetry:")
		for i := 0; i <= lev; i++ {
			t.Pos[i] = e.cond[i].n
			if e.cond[i].m > 0 {
				t.Low[i] = e.cond[i].m
				t.Upp[i] = limits.Infty
			} else {
				t.Low[i] = 5
				t.Upp[i] = -e.cond[i].m
			}
			p.Basef(" (%d,%d,%d)", t.Pos[i], t.Low[i], t.Upp[i])
		}
		p.Basef("\n")
		e.Sym = append(e.Sym, t)
	} else {
		p.Basef("symmetry not added\n")
	}

	return nil
}

// PopLevel discards every registered symmetry whose condition chain
// reaches into level lev or deeper, mirroring main()'s "delete
// symmetries" step on backing out of a level.
func (e *Engine) PopLevel(lev int, p *narrate.Printer) {
	cut := len(e.Sym)
	for cut >= 1 && e.Sym[cut-1].NoLines-1 >= lev {
		cut--
	}
	if cut < len(e.Sym) {
		p.Basef("deleting symmetries:")
		for i := len(e.Sym); i >= cut+1; i-- {
			p.Basef(" %d", e.Sym[i-1].Number)
		}
		p.Basef("\n")
	}
	e.Sym = e.Sym[:cut]
}
