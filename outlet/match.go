package outlet

import "github.com/katalvlaran/fourcolor/axle"

// translate maps outlet-local position p, anchored at hub-spoke x, onto
// an absolute axle coordinate. Shared by Forced, Permitted, and
// ReflForced.
func translate(p, x, deg int) int {
	if x+(p-1)%deg < deg {
		return p + x
	}
	return p + x - deg
}

// Forced reports t's Value if the positioned outlet (t,x) is forced by a:
// every one of t's constraints already holds for every admissible
// completion of a. Grounded on OutletForced.
func (t *Outlet) Forced(a *axle.Axle, x int) int {
	deg := a.Low[0]
	x--
	for i := 0; i < t.NoLines; i++ {
		p := translate(t.Pos[i], x, deg)
		if t.Low[i] > a.Low[p] || t.Upp[i] < a.Upp[p] {
			return 0
		}
	}
	return t.Value
}

// Permitted reports t's Value if the positioned outlet (t,x) is at least
// compatible with a (its interval overlaps a's at every coordinate), 0
// otherwise. Grounded on OutletPermitted.
func (t *Outlet) Permitted(a *axle.Axle, x int) int {
	deg := a.Low[0]
	x--
	for i := 0; i < t.NoLines; i++ {
		p := translate(t.Pos[i], x, deg)
		if t.Low[i] > a.Upp[p] || t.Upp[i] < a.Low[p] {
			return 0
		}
	}
	return t.Value
}

// ReflForced reports t's Value if t is fan-free and every cartwheel
// compatible with a is compatible with the rotation-then-reflection of t
// anchored at x. Grounded on ReflForced.
func (t *Outlet) ReflForced(a *axle.Axle, x int) int {
	deg := a.Low[0]
	x--
	for i := 0; i < t.NoLines; i++ {
		p := translate(t.Pos[i], x, deg)
		var q int
		switch {
		case p < 1 || p > 2*deg:
			return 0
		case p <= deg:
			q = deg - p + 1
		case p < 2*deg:
			q = 3*deg - p
		default:
			q = 2 * deg
		}
		if t.Low[i] > a.Low[q] || t.Upp[i] < a.Upp[q] {
			return 0
		}
	}
	return t.Value
}
