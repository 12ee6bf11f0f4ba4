package matching

import (
	"fmt"

	"github.com/katalvlaran/fourcolor/coloring"
	"github.com/katalvlaran/fourcolor/internal/verifyerr"
)

// pass carries the mutable state a single testmatch pass threads through
// augment/checkreality/stillreal: the live table being consulted, the
// `real` bitset being written, and the running bit/byte cursor into it.
type pass struct {
	matchweight [][]weight
	live        coloring.Live
	real        []byte
	ring        int
	nchar       int
	nreal       int
	bit         byte
	realterm    int
}

// augment finds every matching whose matches are drawn from the given
// disjoint intervals (smallest first, lower end first), recursing one
// level per match chosen, and at every depth hands the current partial
// matching to checkreality.
func (p *pass) augment(n int, interval [10]int, depth int, w [8]weight, basecol int64, on bool) error {
	if err := p.checkreality(depth, w, basecol, on); err != nil {
		return err
	}
	depth++
	for r := 1; r <= n; r++ {
		lower, upper := interval[2*r-1], interval[2*r]
		for i := lower + 1; i <= upper; i++ {
			for j := lower; j < i; j++ {
				w[depth] = p.matchweight[i][j]
				var newinterval [10]int
				h := 1
				for ; h < 2*r-1; h++ {
					newinterval[h] = interval[h]
				}
				newn := r - 1
				if j > lower+1 {
					newn++
					newinterval[h] = lower
					h++
					newinterval[h] = j - 1
					h++
				}
				if i > j+1 {
					newn++
					newinterval[h] = j + 1
					h++
					newinterval[h] = i - 1
					h++
				}
				if err := p.augment(newn, newinterval, depth, w, basecol, on); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// checkreality runs through every signing of the matching currently
// assembled in w[1..depth], skipping signings that prior passes already
// marked non-real, and for the rest tests stillreal and flips the real bit
// on failure.
func (p *pass) checkreality(depth int, w [8]weight, basecol int64, on bool) error {
	nbits := int64(1) << uint(depth-1)
	var choice [8]int64
	for k := int64(0); k < nbits; k, p.bit = k+1, p.bit<<1 {
		if p.bit == 0 {
			p.bit = 1
			p.realterm++
			if p.realterm > p.nchar {
				return verifyerr.New(verifyerr.CategoryResource, 32,
					fmt.Sprintf("more than %d entries in real are needed", p.nchar+1))
			}
		}
		if p.bit&p.real[p.realterm] == 0 {
			continue
		}
		col := basecol
		parity := int64(p.ring & 1)
		left := k
		for i := 1; i < depth; i, left = i+1, left>>1 {
			if left&1 != 0 {
				parity ^= 1
				choice[i] = w[i][1]
				col += w[i][3]
			} else {
				choice[i] = w[i][0]
				col += w[i][2]
			}
		}
		if parity != 0 {
			choice[depth] = w[depth][1]
			col += w[depth][3]
		} else {
			choice[depth] = w[depth][0]
			col += w[depth][2]
		}
		if !p.stillreal(col, choice, depth, on) {
			p.real[p.realterm] ^= p.bit
		} else {
			p.nreal++
		}
	}
	return nil
}

// stillreal checks whether every ring code associated with the signed
// matching (col, choice[1..depth]) is still live; if so it marks the
// matching-family bit (non-ring, untwisted, or twisted) on each associated
// live entry and returns true.
func (p *pass) stillreal(col int64, choice [8]int64, depth int, on bool) bool {
	sum := make([]int64, 1<<uint(depth-1))
	var twisted, untwisted []int64

	if col < 0 {
		if p.live[-col]&coloring.BitCandidate == 0 {
			return false
		}
		twisted = append(twisted, -col)
		sum[0] = col
	} else {
		if p.live[col]&coloring.BitCandidate == 0 {
			return false
		}
		untwisted = append(untwisted, col)
		sum[0] = col
	}

	mark := int64(1)
	twopower := int64(1)
	for i := 2; i <= depth; i, twopower = i+1, twopower<<1 {
		c := choice[i]
		for j := int64(0); j < twopower; j, mark = j+1, mark+1 {
			b := sum[j] - c
			if b < 0 {
				if p.live[-b]&coloring.BitCandidate == 0 {
					return false
				}
				twisted = append(twisted, -b)
				sum[mark] = b
			} else {
				if p.live[b]&coloring.BitCandidate == 0 {
					return false
				}
				untwisted = append(untwisted, b)
				sum[mark] = b
			}
		}
	}

	if on {
		for _, t := range twisted {
			p.live[t] |= coloring.BitTwisted
		}
		for _, u := range untwisted {
			p.live[u] |= coloring.BitUntwisted
		}
	} else {
		for _, t := range twisted {
			p.live[t] |= coloring.BitNonRing
		}
		for _, u := range untwisted {
			p.live[u] |= coloring.BitNonRing
		}
	}
	return true
}
