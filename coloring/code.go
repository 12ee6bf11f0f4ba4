package coloring

// Power returns power[0..n] with power[0] unused, power[1]=1, and
// power[i] = 3*power[i-1] for i>1 — the edge-position weights used
// throughout the colour-code arithmetic.
func Power(n int) []int64 {
	p := make([]int64, n+1)
	if n >= 1 {
		p[1] = 1
	}
	for i := 2; i <= n; i++ {
		p[i] = 3 * p[i-1]
	}
	return p
}

// BigNo returns the canonicalization constant for a ring of the given size:
// (3^ring - 1) / 2.
func BigNo(ring int, power []int64) int64 {
	// power must be sized for index ring+1 (i.e. len(power) > ring).
	return (power[ring+1] - 1) / 2
}

// NCodes returns the number of distinct ring-colouring codes for the given
// ring size: (3^(ring-1) + 1) / 2.
func NCodes(ring int, power []int64) int64 {
	return (power[ring] + 1) / 2
}

// codeFromWeight canonicalizes a colour-class weight triple into a single
// code: bigno - 2*min - max over (weight[1], weight[2], weight[4]). This is
// what makes the code invariant under permuting which bit value means which
// colour.
func codeFromWeight(w [5]int64, bigno int64) int64 {
	minW, maxW := w[4], w[4]
	for i := 1; i <= 2; i++ {
		x := w[i]
		if x < minW {
			minW = x
		} else if x > maxW {
			maxW = x
		}
	}
	return bigno - 2*minW - maxW
}

// Code computes the canonical code of a ring colouring col[1..ring], where
// each col[i] is in {1,2,4}. Grounded on `inlive`.
func Code(col []int64, power []int64, ring int, bigno int64) int64 {
	var w [5]int64
	for i := 1; i <= ring; i++ {
		w[col[i]] += power[i]
	}
	return codeFromWeight(w, bigno)
}

// CodeFromAngles computes the canonical code of a ring colouring that has
// not been assigned directly, but is implied by two already-coloured
// triangle edges per ring position (angle[i] holding exactly those two
// edges for i in 1..ring, since each ring edge lies in exactly one
// triangle of the free completion). The third edge colour in a properly
// 3-coloured triangle is always 7 minus the sum of the other two (as
// 1+2+4=7). Grounded on `record`.
func CodeFromAngles(c []int64, angle [][]int, power []int64, ring int, bigno int64) int64 {
	var w [5]int64
	for i := 1; i <= ring; i++ {
		e1, e2 := angle[i][0], angle[i][1]
		sum := 7 - c[e1] - c[e2]
		w[sum] += power[i]
	}
	return codeFromWeight(w, bigno)
}
