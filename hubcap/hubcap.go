package hubcap

import (
	"io"

	"github.com/katalvlaran/fourcolor/axle"
	"github.com/katalvlaran/fourcolor/internal/narrate"
	"github.com/katalvlaran/fourcolor/outlet"
)

// CheckHubcap verifies a hubcap declaration at axle a. When line is empty
// (the presentation asked to dump the rule table rather than check a
// hubcap), outlets are written to dump in outlet.et format. Otherwise
// line is parsed into its (x,y,v) members, the double-cover accounting
// (H2) is checked, and §4.8's positioned-outlet case tree (CheckBound) is
// run once per member with maxch = v. Grounded on CheckHubcap.
func CheckHubcap(a *axle.Axle, outlets []outlet.Outlet, line string, lineno int, dump io.Writer, p *narrate.Printer, reduce ReduceFunc) error {
	if line == "" {
		return outlet.DumpFile(dump, outlets)
	}

	deg := a.Low[0]
	members, err := ParseMembers(line, lineno)
	if err != nil {
		return err
	}
	if _, err := TotalCost(deg, members, lineno); err != nil {
		return err
	}

	for _, m := range members {
		posout := buildPosout(outlets, m)
		s := make([]int, len(posout)+1)
		s[len(posout)] = 99

		p.Basef("checking hubcap member (%d,%d,%d)\n", m.X, m.Y, m.V)
		if err := CheckBound(a, posout, s, m.V, lineno, p, reduce); err != nil {
			return err
		}
	}
	return nil
}

// buildPosout lists every outlet positioned at m.X, plus again at m.Y when
// the member isn't a self-loop. Grounded on the posout array CheckHubcap
// assembles per hubcap member in discharge.c.
func buildPosout(outlets []outlet.Outlet, m Member) []PositionedOutlet {
	n := len(outlets)
	size := n
	if m.X != m.Y {
		size *= 2
	}
	posout := make([]PositionedOutlet, 0, size)
	for i := range outlets {
		posout = append(posout, PositionedOutlet{T: &outlets[i], X: m.X})
	}
	if m.X != m.Y {
		for i := range outlets {
			posout = append(posout, PositionedOutlet{T: &outlets[i], X: m.Y})
		}
	}
	return posout
}
