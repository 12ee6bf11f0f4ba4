package axle

import "github.com/katalvlaran/fourcolor/internal/limits"

// Vertices is the axle coordinate space: indices 0..5*MaxVal+1, where index
// 0 stores the hub degree and indices 1..deg, deg+1..5*deg index the hub's
// successive rings of neighbours (first, second, third, fourth ring).
type Vertices [limits.CartVert]int

// Axle is a pair of degree-interval vectors: Low[i] <= true-degree(i) <=
// Upp[i] for every coordinate i, with Low[0] == Upp[0] == the hub's degree.
// Grounded on tp_axle.
type Axle struct {
	Low Vertices
	Upp Vertices
}

// Degree returns the hub degree stored at coordinate 0.
func (a *Axle) Degree() int {
	return a.Upp[0]
}

// Copy returns a deep copy of a, truncated to the live coordinate range
// 0..5*deg exactly as CopyAxle does (coordinates beyond 5*deg are stale
// and never read).
func (a *Axle) Copy() *Axle {
	b := &Axle{}
	deg5 := 5 * a.Upp[0]
	for j := 0; j <= deg5; j++ {
		b.Low[j] = a.Low[j]
		b.Upp[j] = a.Upp[j]
	}
	return b
}
