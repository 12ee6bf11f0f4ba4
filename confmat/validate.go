package confmat

import (
	"fmt"

	"github.com/katalvlaran/fourcolor/internal/verifyerr"
)

// Validate checks invariants (1)-(7) of the configuration data model (§3):
// ring bounds, ring cycle structure, degree floors, the Euler-derived degree
// sum, at most two arcs of ring contact per interior vertex, adjacency-list
// reciprocity, and contract sparsity/triad existence. Radius is checked
// separately by CheckRadius, since it is only required on the discharging
// side (§3 "Radius invariant (discharging side)").
func (c *Configuration) Validate() error {
	if err := c.checkRingBounds(); err != nil {
		return err
	}
	if err := c.checkRingCycle(); err != nil {
		return err
	}
	if err := c.checkDegreeFloors(); err != nil {
		return err
	}
	if err := c.checkDegreeSum(); err != nil {
		return err
	}
	if err := c.checkSingleArc(); err != nil {
		return err
	}
	if err := c.checkReciprocity(); err != nil {
		return err
	}
	if err := c.checkContractSparsity(); err != nil {
		return err
	}
	return nil
}

// checkRingBounds enforces invariant (1): 2 <= r < n.
func (c *Configuration) checkRingBounds() error {
	if c.Ring < 2 || c.Ring >= c.N {
		return verifyerr.New(verifyerr.CategoryStructuralInvariant, 21,
			fmt.Sprintf("ring size %d not in [2,%d)", c.Ring, c.N))
	}
	return nil
}

// checkRingCycle enforces invariant (2)'s cycle shape: ring vertex i is
// adjacent to (i mod r)+1, and every ring vertex's degree is >= 3.
func (c *Configuration) checkRingCycle() error {
	for i := 1; i <= c.Ring; i++ {
		next := i%c.Ring + 1
		if !c.adjacent(i, next) {
			return verifyerr.New(verifyerr.CategoryStructuralInvariant, 21,
				fmt.Sprintf("ring vertex %d not adjacent to successor %d", i, next))
		}
		if c.Degree[i] < 3 {
			return verifyerr.New(verifyerr.CategoryStructuralInvariant, 21,
				fmt.Sprintf("ring vertex %d has degree %d < 3", i, c.Degree[i]))
		}
	}
	return nil
}

// checkDegreeFloors enforces the rest of invariant (2): interior vertices
// have degree >= 5, and all degrees are < n.
func (c *Configuration) checkDegreeFloors() error {
	for v := 1; v <= c.N; v++ {
		if v > c.Ring && c.Degree[v] < 5 {
			return verifyerr.New(verifyerr.CategoryStructuralInvariant, 21,
				fmt.Sprintf("interior vertex %d has degree %d < 5", v, c.Degree[v]))
		}
		if c.Degree[v] >= c.N {
			return verifyerr.New(verifyerr.CategoryStructuralInvariant, 21,
				fmt.Sprintf("vertex %d degree %d >= n=%d", v, c.Degree[v], c.N))
		}
	}
	return nil
}

// checkDegreeSum enforces invariant (3): Sum d(v) = 6(n-1) - 2r.
func (c *Configuration) checkDegreeSum() error {
	sum := 0
	for v := 1; v <= c.N; v++ {
		sum += c.Degree[v]
	}
	want := 6*(c.N-1) - 2*c.Ring
	if sum != want {
		return verifyerr.New(verifyerr.CategoryStructuralInvariant, 22,
			fmt.Sprintf("degree sum %d != 6(n-1)-2r=%d", sum, want))
	}
	return nil
}

// checkSingleArc enforces invariant (4): each interior vertex meets the
// ring in at most two contiguous arcs of its clockwise neighbour list.
func (c *Configuration) checkSingleArc() error {
	for v := c.Ring + 1; v <= c.N; v++ {
		d := c.Degree[v]
		arcs := 0
		for i := 0; i < d; i++ {
			cur := c.Adj[v][i] <= c.Ring
			prev := c.Adj[v][(i-1+d)%d] <= c.Ring
			if cur && !prev {
				arcs++
			}
		}
		if arcs > 2 {
			return verifyerr.New(verifyerr.CategoryStructuralInvariant, 22,
				fmt.Sprintf("interior vertex %d meets ring in %d arcs > 2", v, arcs))
		}
	}
	return nil
}

// checkReciprocity enforces invariant (5): every directed edge (u,v) has a
// reverse (v,u) somewhere in v's neighbour list.
func (c *Configuration) checkReciprocity() error {
	for v := 1; v <= c.N; v++ {
		d := c.Degree[v]
		for i := 0; i < d; i++ {
			u := c.Adj[v][i]
			if u < 1 || u > c.N {
				return verifyerr.New(verifyerr.CategoryStructuralInvariant, 22,
					fmt.Sprintf("vertex %d neighbour %d out of range", v, u))
			}
			pos := -1
			for j := 0; j < c.Degree[u]; j++ {
				if c.Adj[u][j] == v {
					pos = j
					break
				}
			}
			if pos < 0 {
				return verifyerr.New(verifyerr.CategoryStructuralInvariant, 22,
					fmt.Sprintf("edge (%d,%d) has no reverse in vertex %d's list", v, u, u))
			}
		}
	}
	return nil
}

// checkContractSparsity enforces invariant (6): |X| in 0..4, and if |X|=4 a
// triad must exist — an interior vertex of degree <=5 whose neighbours
// include >=3 endpoints of X.
func (c *Configuration) checkContractSparsity() error {
	pairs := c.ContractPairs()
	if len(pairs) > 4 {
		return verifyerr.New(verifyerr.CategoryStructuralInvariant, 20,
			fmt.Sprintf("contract size %d > 4", len(pairs)))
	}
	if len(pairs) != 4 {
		return nil
	}
	endpoints := map[int]bool{}
	for _, p := range pairs {
		endpoints[p[0]] = true
		endpoints[p[1]] = true
	}
	for v := c.Ring + 1; v <= c.N; v++ {
		if c.Degree[v] > 5 {
			continue
		}
		count := 0
		for i := 0; i < c.Degree[v]; i++ {
			if endpoints[c.Adj[v][i]] {
				count++
			}
		}
		if count >= 3 {
			return nil
		}
	}
	return verifyerr.New(verifyerr.CategoryStructuralInvariant, 20,
		"contract of size 4 declared without a triad")
}

func (c *Configuration) adjacent(u, v int) bool {
	for i := 0; i < c.Degree[u]; i++ {
		if c.Adj[u][i] == v {
			return true
		}
	}
	return false
}

// CheckRadius verifies the discharging-side invariant (7): some interior
// vertex has eccentricity <= 2 over the configuration's own adjacency
// graph. Configurations consumed purely by the reducibility engine need
// not satisfy this; callers building axles from a configuration (the
// discharging side) call it explicitly.
func (c *Configuration) CheckRadius() error {
	for center := c.Ring + 1; center <= c.N; center++ {
		if c.eccentricityAtMost2(center) {
			return nil
		}
	}
	return verifyerr.New(verifyerr.CategoryStructuralInvariant, 38,
		"no interior vertex has radius <= 2")
}

func (c *Configuration) eccentricityAtMost2(center int) bool {
	dist := make(map[int]int, c.N)
	dist[center] = 0
	queue := []int{center}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if dist[v] >= 2 {
			continue
		}
		for i := 0; i < c.Degree[v]; i++ {
			n := c.Adj[v][i]
			if _, ok := dist[n]; !ok {
				dist[n] = dist[v] + 1
				queue = append(queue, n)
			}
		}
	}
	return len(dist) == c.N
}
