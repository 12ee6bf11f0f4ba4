package axle

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fourcolor/internal/limits"
	"github.com/katalvlaran/fourcolor/internal/narrate"
)

// String renders a on one line: "<coord>:<low>[<upp-or-+>] " for every
// coordinate whose interval isn't the default [5,Infty). Grounded on
// PrintAxle.
func (a *Axle) String() string {
	var b strings.Builder
	deg := a.Upp[0]
	for i := 1; i <= 5*deg; i++ {
		if a.Low[i] == 5 && a.Upp[i] == limits.Infty {
			continue
		}
		fmt.Fprintf(&b, " %d:%d", i, a.Low[i])
		if a.Low[i] != a.Upp[i] {
			if a.Upp[i] == limits.Infty {
				b.WriteString("+")
			} else {
				fmt.Fprintf(&b, "%d", a.Upp[i])
			}
		}
		b.WriteString(" ")
	}
	return b.String()
}

// Print writes a's rendering followed by a newline to p, at PRTBAS.
func (a *Axle) Print(p *narrate.Printer) {
	p.Basef("%s\n", a.String())
}
