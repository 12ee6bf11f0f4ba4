package matching

import "github.com/katalvlaran/fourcolor/coloring"

// TestMatch runs one full matching pass over live: it enumerates every
// balanced signed matching of the ring (first those not incident with ring
// position `ring`, then those that are), testing reality of each against
// live and updating the `real` bitset (sized for nchar bytes) and live's
// scratch bits accordingly. Returns the count of real signed matchings
// found this pass.
//
// Grounded on `testmatch`: the two enumeration loops below seed augment
// with the outermost match already chosen and the remaining free index
// ranges split around it.
func TestMatch(ring int, power []int64, live coloring.Live, real []byte, nchar int) (int, error) {
	p := &pass{
		live:  live,
		real:  real,
		ring:  ring,
		nchar: nchar,
		bit:   1,
	}

	nonRing := nonRingWeights(power, ring)
	p.matchweight = nonRing
	for a := 2; a < ring; a++ {
		for b := 1; b < a; b++ {
			var w [8]weight
			w[1] = nonRing[a][b]
			n := 0
			var interval [10]int
			if b >= 3 {
				n = 1
				interval[1] = 1
				interval[2] = b - 1
			}
			if a >= b+3 {
				n++
				interval[2*n-1] = b + 1
				interval[2*n] = a - 1
			}
			if err := p.augment(n, interval, 1, w, 0, false); err != nil {
				return 0, err
			}
		}
	}

	ring1 := ringWeights(power, ring)
	p.matchweight = ring1
	bigno := coloring.BigNo(ring, power)
	for b := 1; b < ring; b++ {
		var w [8]weight
		w[1] = ring1[ring][b]
		n := 0
		var interval [10]int
		if b >= 3 {
			n = 1
			interval[1] = 1
			interval[2] = b - 1
		}
		if ring >= b+3 {
			n++
			interval[2*n-1] = b + 1
			interval[2*n] = ring - 1
		}
		if err := p.augment(n, interval, 1, w, bigno, true); err != nil {
			return 0, err
		}
	}

	return p.nreal, nil
}
