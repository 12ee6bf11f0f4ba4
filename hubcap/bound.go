package hubcap

import (
	"github.com/katalvlaran/fourcolor/axle"
	"github.com/katalvlaran/fourcolor/internal/narrate"
	"github.com/katalvlaran/fourcolor/internal/verifyerr"
)

// ReduceFunc re-checks reducibility of an axle against the unavoidable
// set when a positioned-outlet branch's forced charge alone exceeds the
// member's bound — the discharging engine's fallback to the reducibility
// engine (§4.7), injected here to avoid hubcap importing it directly.
type ReduceFunc func(a *axle.Axle, lineno int) (bool, error)

// translate maps outlet-local position p, anchored at hub-spoke x
// (0-based), onto an absolute axle coordinate. Same rotation outlet.Forced
// applies internally; restated here because CheckBound also needs to
// tighten the axle directly, not just query it.
func translate(p, x, deg int) int {
	if x+(p-1)%deg < deg {
		return p + x
	}
	return p + x - deg
}

type cbFrame struct {
	a     *axle.Axle
	s     []int
	depth int
}

// CheckBound explores, with an explicit work stack rather than native
// recursion, every way of forcing or rejecting the positioned outlets in
// posout against axle a, verifying that the claimed bound maxch is never
// exceeded without the axle being independently reducible.
//
// Each popped frame owns its own a/s; tightened children get copies, so
// no frame ever observes another frame's in-progress mutation. A frame's
// "reject positioned outlet at pos" bookkeeping doesn't depend on what a
// pushed child discovers (the child only ever succeeds silently or the
// whole check fails outright), so unlike a literal call-stack
// replacement, children are pushed and drained independently rather than
// resumed into after returning — narration for a rejected branch can
// therefore interleave differently than the original's depth-first
// trace, though the forced/allowed accounting it reports is identical.
// Grounded on CheckBound, restructured per the branch-and-bound idiom of
// lvlath's tsp package.
func CheckBound(root *axle.Axle, posout []PositionedOutlet, s []int, maxch, lineno int, p *narrate.Printer, reduce ReduceFunc) error {
	stack := []cbFrame{{a: root, s: append([]int(nil), s...), depth: 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		deg := f.a.Low[0]
		forcedch, allowedch := 0, 0
		for i := 0; f.s[i] < 99; i++ {
			po := posout[i]
			if f.s[i] > 0 {
				forcedch += po.T.Value
			}
			if f.s[i] != 0 {
				continue
			}
			if po.T.Forced(f.a, po.X) != 0 {
				f.s[i] = 1
				forcedch += po.T.Value
			} else if po.T.Permitted(f.a, po.X) == 0 {
				f.s[i] = -1
			} else if po.T.Value > 0 {
				allowedch += po.T.Value
			}
		}

		p.Indent(f.depth)
		p.Pairf("forcedch=%d allowedch=%d maxch=%d\n", forcedch, allowedch, maxch)

		if forcedch+allowedch <= maxch {
			p.Indent(f.depth)
			p.Basef("inequality holds\n")
			continue
		}
		if forcedch > maxch {
			ok, err := reduce(f.a, lineno)
			if err != nil {
				return err
			}
			if !ok {
				return verifyerr.New(verifyerr.CategoryMathematicalClaim, lineno, "incorrect hubcap upper bound").WithLine(lineno)
			}
			continue
		}

		resolved := false
		for pos := 0; f.s[pos] < 99; pos++ {
			po := posout[pos]
			if f.s[pos] != 0 || po.T.Value < 0 {
				continue
			}

			x := po.X
			aa := f.a.Copy()
			for i := 0; i < po.T.NoLines; i++ {
				pp := translate(po.T.Pos[i], x-1, deg)
				if po.T.Low[i] > aa.Low[pp] {
					aa.Low[pp] = po.T.Low[i]
				}
				if po.T.Upp[i] < aa.Upp[pp] {
					aa.Upp[pp] = po.T.Upp[i]
				}
				if aa.Low[pp] > aa.Upp[pp] {
					return verifyerr.New(verifyerr.CategoryStructuralInvariant, lineno, "unexpected error 321").WithLine(lineno)
				}
			}

			good := true
			for i := 0; i < pos; i++ {
				if f.s[i] == -1 && posout[i].T.Forced(aa, posout[i].X) != 0 {
					good = false
					break
				}
			}
			if good {
				sprime := append([]int(nil), f.s...)
				sprime[pos] = 1
				stack = append(stack, cbFrame{a: aa, s: sprime, depth: f.depth + 1})
			}

			f.s[pos] = -1
			allowedch -= po.T.Value
			if allowedch+forcedch <= maxch {
				resolved = true
				break
			}
		}
		if !resolved {
			return verifyerr.New(verifyerr.CategoryMathematicalClaim, lineno, "unexpected error 101").WithLine(lineno)
		}
	}
	return nil
}
