package confmat

import "github.com/katalvlaran/fourcolor/internal/limits"

// Configuration is the free completion of one near-triangulated
// configuration: vertex count, ring size, the claimed extendable-colouring
// count, an optional contract, and clockwise adjacency.
type Configuration struct {
	Name string

	N          int // total vertex count
	Ring       int // ring size r, 2 <= r < n
	Extendable int // declared count of extendable ring colourings
	MaxCons    int // declared max_consecutive_subset (contract check)

	// Contract holds 2*|X| vertex indices as (u0,v0,u1,v1,...) pairs,
	// |X| in 0..4.
	Contract []int

	// Degree[v] is vertex v's degree, 1-indexed; Degree[0] unused.
	Degree [limits.Verts + 1]int

	// Adj[v][0:Degree[v]] is vertex v's clockwise-ordered neighbour list,
	// 1-indexed. Column 0 of the original's packed tp_confmat row (degree)
	// is kept separately in Degree rather than folded into Adj, trading the
	// original's single flat array for two bounds-checked accessors.
	Adj [limits.Verts + 1][limits.Deg]int
}

// IsRing reports whether vertex v (1-indexed) lies on the ring.
func (c *Configuration) IsRing(v int) bool {
	return v >= 1 && v <= c.Ring
}

// ContractPairs returns the contract edge set as (u,v) pairs.
func (c *Configuration) ContractPairs() [][2]int {
	out := make([][2]int, 0, len(c.Contract)/2)
	for i := 0; i+1 < len(c.Contract); i += 2 {
		out = append(out, [2]int{c.Contract[i], c.Contract[i+1]})
	}
	return out
}

// Neighbour returns Adj[v][i], the i-th clockwise neighbour of v (0-indexed
// i), with bounds checking in place of the original's unchecked array
// access.
func (c *Configuration) Neighbour(v, i int) (int, bool) {
	if v < 1 || v > c.N || i < 0 || i >= c.Degree[v] {
		return 0, false
	}
	return c.Adj[v][i], true
}
