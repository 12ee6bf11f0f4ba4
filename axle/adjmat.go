package axle

import "github.com/katalvlaran/fourcolor/internal/limits"

// AdjMat is the clockwise-triangle adjacency matrix of an axle's skeleton:
// At(u,v) == w whenever u, v, w form a clockwise triangle, and -1 if no
// such w exists. Bounds-checked in place of the original's raw array
// indexing, per the packed-matrix accessor idiom.
type AdjMat struct {
	m [limits.CartVert][limits.CartVert]int
}

// At returns the stored value at (u,v), or -1 if either coordinate is
// outside the axle coordinate space.
func (m *AdjMat) At(u, v int) int {
	if u < 0 || u >= limits.CartVert || v < 0 || v >= limits.CartVert {
		return -1
	}
	return m.m[u][v]
}

func (m *AdjMat) set(u, v, val int) {
	m.m[u][v] = val
}

// BuildAdjMat computes the adjacency matrix of a, a function of the hub
// degree (Low[0]) and the upper bounds Upp[1..deg] alone. Grounded on
// Getadjmat: lays down the deg-gon around the hub, then expands a fan at
// every hub neighbour whose degree upper bound Upp[i] is below 9.
func BuildAdjMat(a *Axle) *AdjMat {
	deg := a.Low[0]
	m := &AdjMat{}
	for u := 0; u < limits.CartVert; u++ {
		for v := 0; v < limits.CartVert; v++ {
			m.m[u][v] = -1
		}
	}
	for i := 1; i <= deg; i++ {
		h := deg
		if i != 1 {
			h = i - 1
		}
		m.set(0, h, i)
		m.set(i, 0, h)
		m.set(h, i, 0)
		spoke := deg + h
		m.set(i, h, spoke)
		m.set(spoke, i, h)
		m.set(h, spoke, i)
		if a.Upp[i] < 9 {
			DoFan(deg, i, a.Upp[i], m)
		}
	}
	return m
}

// DoFan lays down one hub spoke's fan: the ring-2..ring-4 neighbours
// forced by hub neighbour i's degree upper bound k of 5, 6, 7, or (up to) 8.
// Exported so outlet construction can extend the fan for outlets that pin
// a vertex's exact degree. Grounded on DoFan.
func DoFan(deg, i, k int, m *AdjMat) {
	a := deg + i - 1
	if i == 1 {
		a = 2 * deg
	}
	b := deg + i
	if k == 5 {
		m.set(i, a, b)
		m.set(a, b, i)
		m.set(b, i, a)
		return
	}
	c := 2*deg + i
	m.set(i, a, c)
	m.set(a, c, i)
	m.set(c, i, a)
	if k == 6 {
		m.set(i, c, b)
		m.set(c, b, i)
		m.set(b, i, c)
		return
	}
	d := 3*deg + i
	m.set(i, c, d)
	m.set(c, d, i)
	m.set(d, i, c)
	if k == 7 {
		m.set(i, d, b)
		m.set(d, b, i)
		m.set(b, i, d)
		return
	}
	e := 4*deg + i
	m.set(i, d, e)
	m.set(d, e, i)
	m.set(e, i, d)
	m.set(i, e, b)
	m.set(e, b, i)
	m.set(b, i, e)
}
