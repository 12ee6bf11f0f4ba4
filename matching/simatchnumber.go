package matching

// SiMatchNumber[r] is the precomputed count of balanced signed matchings
// for ring size r, 0 <= r <= 14. Used only to size the `real` bitset; not
// printed and not a control-flow input. Supplements spec.md (which
// names MaxRing but not this derived table) — see original_source
// `printstatus`.
var SiMatchNumber = [15]int64{
	0, 0, 1, 3, 10, 30, 95, 301, 980, 3228, 10797, 36487, 124542, 428506, 1485003,
}

// NChar returns the number of bytes needed for the `real` bitset at the
// given ring size: simatchnumber[ring]/8 + 1.
func NChar(ring int) int {
	return int(SiMatchNumber[ring]/8) + 1
}
