package coloring

// FindLive enumerates proper 3-edge-colourings of the free completion by
// assigning edges[edges..ring+1] descending values in {1,2,4}, using angle
// as the per-edge forbidden-mask source, and clears the corresponding ring
// code from the returned Live table for every colouring reached.
//
// Grounded on `findlive`/`record`: colours are represented as the bits
// 1, 2, 4 so that a forbidden mask is simply the OR of already-chosen
// neighbour colours, and "try next colour" is a left bit-shift that
// overflows out of {1,2,4} at bit 8 — the overflow signals backtrack.
//
// Returns the populated Live table and the extent (count of distinct ring
// codes cleared by the colourings reached, i.e. the declared "extendable"
// count to verify against).
func FindLive(angle [][]int, ring, edges int) (Live, int) {
	power := Power(edges + 1)
	bigno := BigNo(ring, power)
	ncodes := NCodes(ring, power)
	live := NewLive(ncodes)

	c := make([]int64, edges+1)
	forbidden := make([]int64, edges+1)
	c[edges] = 1
	j := edges - 1
	c[j] = 2
	forbidden[j] = 5

	extent := 0
	for {
		for forbidden[j]&c[j] != 0 {
			nj, done := advanceColour(c, j, edges)
			j = nj
			if done {
				return live, extent
			}
		}
		if j == ring+1 {
			code := CodeFromAngles(c, angle, power, ring, bigno)
			if live[code]&BitCandidate != 0 {
				extent++
				live[code] &^= BitCandidate
			}
			nj, done := advanceColour(c, j, edges)
			j = nj
			if done {
				return live, extent
			}
		} else {
			j--
			am := angle[j]
			c[j] = 1
			var u int64
			for _, e := range am {
				u |= c[e]
			}
			forbidden[j] = u
		}
	}
}

// advanceColour tries the next colour at position j (1 -> 2 -> 4 -> overflow),
// backtracking to higher positions (lower j moving toward edges-1... the
// original walks j upward on overflow, since lower indices are assigned
// later) while they too overflow. Returns the new position and whether
// enumeration is exhausted (done).
func advanceColour(c []int64, j, edges int) (int, bool) {
	c[j] <<= 1
	for c[j]&8 != 0 {
		if j >= edges-1 {
			return j, true
		}
		j++
		c[j] <<= 1
	}
	return j, false
}
