package hubcap

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/katalvlaran/fourcolor/internal/verifyerr"
)

var memberPattern = regexp.MustCompile(`\((\d+),(\d+),(\d+)\)`)

// ParseMembers extracts the (x,y,v) triples off a hubcap presentation
// line. Grounded on CheckHubcap's hand-rolled sscanf loop, reworked onto
// regexp/strconv — no pack example hand-rolls a character scanner for a
// fixed "(%d,%d,%d)" grammar, and this is the idiomatic Go substitute.
func ParseMembers(line string, lineno int) ([]Member, error) {
	matches := memberPattern.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return nil, verifyerr.New(verifyerr.CategoryFormat, lineno, "hubcap line has no (x,y,v) members").WithLine(lineno)
	}
	members := make([]Member, len(matches))
	for i, m := range matches {
		x, _ := strconv.Atoi(m[1])
		y, _ := strconv.Atoi(m[2])
		v, _ := strconv.Atoi(m[3])
		members[i] = Member{X: x, Y: y, V: v}
	}
	return members, nil
}

// TotalCost validates the hubcap's double-cover accounting (H2): every hub
// edge 1..deg is covered twice, either by two cross members or by one
// self-loop member. A cross member (x,y) that is the only member touching
// both x and y also counts as a double cover, and its v is then charged
// twice. Cross members cost v, self-loops 2v, and the total must not
// exceed 20(deg-6)+1. Returns the total. Grounded on the covered[]/aux[]
// bookkeeping in CheckHubcap.
func TotalCost(deg int, members []Member, lineno int) (int, error) {
	covered := make([]int, deg+1)
	aux := make([]int, deg+1)
	total := 0

	for _, m := range members {
		if m.X < 1 || m.X > deg || m.Y < 1 || m.Y > deg {
			return 0, verifyerr.New(verifyerr.CategoryFormat, lineno,
				fmt.Sprintf("hubcap member (%d,%d,%d) out of range", m.X, m.Y, m.V)).WithLine(lineno)
		}
		if m.X == m.Y {
			total += 2 * m.V
			if covered[m.X] != 0 {
				return 0, verifyerr.New(verifyerr.CategoryMathematicalClaim, lineno, "invalid double cover").WithLine(lineno)
			}
			covered[m.X] = -1
			continue
		}
		aux[m.X] = m.V
		total += m.V
		if covered[m.X] == -1 || covered[m.Y] == -1 {
			return 0, verifyerr.New(verifyerr.CategoryMathematicalClaim, lineno, "invalid double cover").WithLine(lineno)
		}
		if covered[m.X] == 0 {
			covered[m.X] = m.Y
		} else {
			covered[m.X] = -1
		}
		if covered[m.Y] == 0 {
			covered[m.Y] = m.X
		} else {
			covered[m.Y] = -1
		}
	}

	for i := 1; i <= deg; i++ {
		if covered[i] == 0 {
			return 0, verifyerr.New(verifyerr.CategoryMathematicalClaim, lineno, "invalid hubcap: hub edge uncovered").WithLine(lineno)
		}
		if covered[i] == -1 {
			continue
		}
		if covered[covered[i]] != i {
			return 0, verifyerr.New(verifyerr.CategoryMathematicalClaim, lineno, "invalid hubcap: asymmetric cover").WithLine(lineno)
		}
		total += aux[i]
	}

	if total > 20*(deg-6)+1 {
		return total, verifyerr.New(verifyerr.CategoryMathematicalClaim, lineno,
			fmt.Sprintf("double cover has cost %d: hubcap does not satisfy (H2)", total)).WithLine(lineno)
	}
	return total, nil
}
