package matching

// weight is the 4-tuple of colour-code deltas a single signed match (a,b)
// contributes, indexed [0]=both-plus, [1]=plus-minus (or similar), [2],[3]
// per the two sign choices tracked by checkreality/stillreal.
type weight [4]int64

// nonRingWeights builds matchweight[a][b] for matches not incident with the
// last ring edge: mw = {2(p(a)+p(b)), 2(p(a)-p(b)), p(a)+p(b), p(a)-p(b)}.
func nonRingWeights(power []int64, ring int) [][]weight {
	mw := make([][]weight, ring+1)
	for a := range mw {
		mw[a] = make([]weight, ring+1)
	}
	for a := 2; a <= ring; a++ {
		for b := 1; b < a; b++ {
			mw[a][b] = weight{
				2 * (power[a] + power[b]),
				2 * (power[a] - power[b]),
				power[a] + power[b],
				power[a] - power[b],
			}
		}
	}
	return mw
}

// ringWeights builds matchweight[a][b] for matches incident with the last
// ring edge, encoding the twist: mw = {p(a)+p(b), p(a)-p(b), -p(a)-p(b),
// -p(a)-2p(b)}.
func ringWeights(power []int64, ring int) [][]weight {
	mw := make([][]weight, ring+1)
	for a := range mw {
		mw[a] = make([]weight, ring+1)
	}
	for a := 2; a <= ring; a++ {
		for b := 1; b < a; b++ {
			mw[a][b] = weight{
				power[a] + power[b],
				power[a] - power[b],
				-power[a] - power[b],
				-power[a] - 2*power[b],
			}
		}
	}
	return mw
}
