package discharge

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/katalvlaran/fourcolor/axle"
	"github.com/katalvlaran/fourcolor/hubcap"
	"github.com/katalvlaran/fourcolor/internal/limits"
	"github.com/katalvlaran/fourcolor/internal/narrate"
	"github.com/katalvlaran/fourcolor/internal/verifyerr"
	"github.com/katalvlaran/fourcolor/outlet"
	"github.com/katalvlaran/fourcolor/presentation"
)

var (
	degreePattern = regexp.MustCompile(`Degree(\d+)`)
	levelPattern  = regexp.MustCompile(`^L(\d+)$`)
)

// VerifyPresentation replays one presentation file (pres) against a rule
// file (rules) and an unavoidable-set file (unav): it reads the hub
// degree off the header line, builds the outlet table and reducibility
// oracle, then dispatches every "L<lev> {S,R,H,C}" line in turn,
// narrowing/branching the axle case tree exactly as CheckCondition/
// CheckSymmetry/CheckHubcap/Reduce describe, and finally requires a
// trailing "Q.E.D." line. dump, if non-nil, receives the outlet table in
// outlet.et format.
//
// p narrates at level full, but only for the line numbered target; target
// 0 narrates every line at level full, matching the original's "lineno 0
// means print everything" convention. Grounded on discharge.c's main.
func VerifyPresentation(pres, rules, unav io.Reader, dump io.Writer, p *narrate.Printer, target int, full narrate.Level) error {
	sc := bufio.NewScanner(pres)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	lineno := 0
	setLevel := func() {
		if target == 0 || lineno == target {
			p.Level = full
		} else {
			p.Level = 0
		}
	}
	nextLine := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		lineno++
		setLevel()
		return sc.Text(), nil
	}

	header, err := nextLine()
	if err != nil {
		return verifyerr.New(verifyerr.CategoryIO, 46, "unexpected end of input file").WithLine(lineno)
	}
	p.Linef("%4d:%s\n", lineno, header)

	m := degreePattern.FindStringSubmatch(header)
	if m == nil {
		return verifyerr.New(verifyerr.CategoryFormat, lineno, "invalid degree").WithLine(lineno)
	}
	deg := 0
	fmt.Sscanf(m[1], "%d", &deg)
	if deg < 5 || deg > limits.MaxVal {
		return verifyerr.New(verifyerr.CategoryFormat, lineno, "invalid degree").WithLine(lineno)
	}

	pe := presentation.NewEngine(deg)

	outlets, err := outlet.ReadOutlets(rules, &pe.Axles[0])
	if err != nil {
		return err
	}
	if dump != nil {
		if err := outlet.DumpFile(dump, outlets); err != nil {
			return err
		}
	}

	rs, err := LoadUnavoidableSet(unav)
	if err != nil {
		return err
	}
	reduceFn := hubcap.ReduceFunc(func(a *axle.Axle, ln int) (bool, error) {
		return rs.Reduce(a, ln, p)
	})

	for lev := 0; lev >= 0; {
		if lev >= limits.MaxLev {
			return verifyerr.New(verifyerr.CategoryResource, lineno,
				fmt.Sprintf("more than %d levels", limits.MaxLev)).WithLine(lineno)
		}
		line, err := nextLine()
		if err != nil {
			return verifyerr.New(verifyerr.CategoryIO, 46, "unexpected end of input file").WithLine(lineno)
		}
		p.Linef("%4d:%s\n", lineno, line)

		fs := strings.Fields(line)
		if len(fs) == 0 {
			return verifyerr.New(verifyerr.CategoryFormat, lineno, "invalid instruction").WithLine(lineno)
		}
		lm := levelPattern.FindStringSubmatch(fs[0])
		if lm == nil {
			return verifyerr.New(verifyerr.CategoryFormat, lineno, fmt.Sprintf("level %d expected", lev)).WithLine(lineno)
		}
		var a int
		fmt.Sscanf(lm[1], "%d", &a)
		if a != lev {
			return verifyerr.New(verifyerr.CategoryFormat, lineno, fmt.Sprintf("level %d expected", lev)).WithLine(lineno)
		}
		rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fs[0]))
		if rest == "" {
			return verifyerr.New(verifyerr.CategoryFormat, lineno, "invalid instruction").WithLine(lineno)
		}

		switch rest[0] {
		case 'S':
			if err := pe.CheckSymmetry(rest, lev, lineno); err != nil {
				return err
			}
		case 'R':
			ok, err := rs.Reduce(&pe.Axles[lev], lineno, p)
			if err != nil {
				return err
			}
			if !ok {
				return verifyerr.New(verifyerr.CategoryMathematicalClaim, lineno, "reducibility failed").WithLine(lineno)
			}
		case 'H':
			if err := hubcap.CheckHubcap(&pe.Axles[lev], outlets, rest, lineno, nil, p, reduceFn); err != nil {
				return err
			}
		case 'C':
			if err := pe.CheckCondition(rest, lev, lineno, p); err != nil {
				return err
			}
			lev++
			continue
		default:
			return verifyerr.New(verifyerr.CategoryFormat, lineno, "invalid instruction").WithLine(lineno)
		}

		pe.PopLevel(lev, p)
		lev--
	}

	final, err := nextLine()
	if err != nil {
		return verifyerr.New(verifyerr.CategoryIO, 46, "unexpected end of input file").WithLine(lineno)
	}
	if !strings.HasPrefix(strings.TrimSpace(final), "Q.E.D") {
		return verifyerr.New(verifyerr.CategoryFormat, lineno, "`Q.E.D.' expected").WithLine(lineno)
	}
	return nil
}
