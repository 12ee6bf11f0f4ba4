package contract

import (
	"github.com/katalvlaran/fourcolor/coloring"
	"github.com/katalvlaran/fourcolor/internal/verifyerr"
	"github.com/katalvlaran/fourcolor/skeleton"
)

// Check re-verifies the contract declared on a configuration whose live set
// did not close to empty. nlive is the post-closure live count; maxCons is
// the configuration's declared max_consecutive_subset, expected to equal
// nlive when a contract is in play. Grounded on `checkcontract`/`inlive`.
func Check(live coloring.Live, nlive int, tbl *skeleton.Tables, maxCons int) error {
	hasContract := false
	for i := 1; i <= tbl.Edges; i++ {
		if tbl.Contract[i] {
			hasContract = true
			break
		}
	}

	if nlive == 0 {
		if !hasContract {
			return nil
		}
		return verifyerr.New(verifyerr.CategoryMathematicalClaim, 23, "contract proposed on an already D-reducible configuration")
	}
	if !hasContract {
		return verifyerr.New(verifyerr.CategoryMathematicalClaim, 24, "no contract proposed")
	}
	if nlive != maxCons {
		return verifyerr.New(verifyerr.CategoryMathematicalClaim, 25, "discrepancy in exterior size")
	}

	ring := tbl.Ring
	power := coloring.Power(ring + 1)
	bigno := coloring.BigNo(ring, power)

	start := tbl.Edges
	for tbl.Contract[start] {
		start--
	}

	c := make([]int64, tbl.Edges+1)
	forbidden := make([]int64, tbl.Edges+1)

	c[start] = 1
	j := start
	for {
		j--
		if !tbl.Contract[j] {
			break
		}
	}
	c[j] = 1
	forbidden[j] = forbiddenMask(c, tbl, j, 4)

	for {
		for forbidden[j]&c[j] != 0 {
			c[j] <<= 1
			for c[j]&8 != 0 {
				for {
					j++
					if !tbl.Contract[j] {
						break
					}
				}
				if j >= start {
					return nil // contract confirmed
				}
				c[j] <<= 1
			}
		}
		if j == 1 {
			if inLive(c, power, ring, live, bigno) {
				return verifyerr.New(verifyerr.CategoryMathematicalClaim, 26, "input contract is incorrect")
			}
			c[j] <<= 1
			for c[j]&8 != 0 {
				for {
					j++
					if !tbl.Contract[j] {
						break
					}
				}
				if j >= start {
					return nil
				}
				c[j] <<= 1
			}
			continue
		}
		for {
			j--
			if !tbl.Contract[j] {
				break
			}
		}
		c[j] = 1
		forbidden[j] = forbiddenMask(c, tbl, j, 0)
	}
}

// forbiddenMask computes the forbidden-colour bitmask at position j: OR in
// the colour of every diffangle partner (must differ), and force-equal to
// every sameangle partner's colour (by forbidding every other colour).
func forbiddenMask(c []int64, tbl *skeleton.Tables, j int, base int64) int64 {
	u := base
	for _, e := range tbl.DiffAngle[j] {
		u |= c[e]
	}
	for _, e := range tbl.SameAngle[j] {
		u |= ^c[e]
	}
	return u
}

// inLive reports whether the ring colouring encoded in c[1..ring] is still
// marked live, without modifying live. Grounded on `inlive`.
func inLive(c []int64, power []int64, ring int, live coloring.Live, bigno int64) bool {
	code := coloring.Code(c, power, ring, bigno)
	return live[code]&coloring.BitCandidate != 0
}
