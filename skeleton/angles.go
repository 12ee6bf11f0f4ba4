package skeleton

import (
	"fmt"

	"github.com/katalvlaran/fourcolor/confmat"
	"github.com/katalvlaran/fourcolor/internal/limits"
	"github.com/katalvlaran/fourcolor/internal/verifyerr"
)

// Tables holds the canonical edge count, the three angle tables, and the
// per-edge contract membership flags computed from a configuration.
//
// Angle[c] lists every edge >c sharing a triangle with c. DiffAngle[c]
// restricts that to triangles with no contract edge. SameAngle[c] lists the
// edges whose opposite triangle edge is itself a contract edge — see §3
// "Edge numbering & angles".
type Tables struct {
	Ring      int
	Edges     int
	Angle     [][]int
	DiffAngle [][]int
	SameAngle [][]int
	Contract  []bool // Contract[i] true iff edge i is a contract edge
}

// Build computes the angle tables for cfg given its canonical edge
// numbering. Grounded on `findangles`: walks every directed triangle
// (v,h,i) formed by consecutive neighbours of v, classifying each
// higher-numbered edge of the triangle into Angle/DiffAngle/SameAngle, then
// verifies contract sparsity and (for |X|=4) triad existence.
func Build(cfg *confmat.Configuration, edgeno EdgeNo) (*Tables, error) {
	edges := 3*cfg.N - 3 - cfg.Ring
	if edges >= limits.Edges {
		return nil, verifyerr.New(verifyerr.CategoryResource, 20,
			fmt.Sprintf("configuration has more than %d edges", limits.Edges-1))
	}

	t := &Tables{
		Ring:      cfg.Ring,
		Edges:     edges,
		Angle:     make([][]int, edges+1),
		DiffAngle: make([][]int, edges+1),
		SameAngle: make([][]int, edges+1),
		Contract:  make([]bool, edges+1),
	}

	pairs := cfg.ContractPairs()
	if len(pairs) > 4 {
		return nil, verifyerr.New(verifyerr.CategoryStructuralInvariant, 27, "invalid contract")
	}
	for _, p := range pairs {
		c := edgeno[p[0]][p[1]]
		if c < 1 {
			return nil, verifyerr.New(verifyerr.CategoryStructuralInvariant, 29, "contract contains non-edge")
		}
		t.Contract[c] = true
	}
	for i := 1; i <= cfg.Ring; i++ {
		if t.Contract[i] {
			return nil, verifyerr.New(verifyerr.CategoryStructuralInvariant, 21, "contract is not sparse (ring-incident)")
		}
	}

	for v := 1; v <= cfg.N; v++ {
		d := cfg.Degree[v]
		for h := 1; h <= d; h++ {
			if v <= cfg.Ring && h == d {
				continue
			}
			i := h + 1
			if h == d {
				i = 1
			}
			u := cfg.Adj[v][h-1]
			w := cfg.Adj[v][i-1]
			a := edgeno[v][w]
			b := edgeno[u][w]
			c := edgeno[u][v]
			if t.Contract[a] && t.Contract[b] {
				return nil, verifyerr.New(verifyerr.CategoryStructuralInvariant, 22, "contract is not sparse")
			}
			if a > c {
				t.Angle[c] = append(t.Angle[c], a)
				if !t.Contract[a] && !t.Contract[b] && !t.Contract[c] {
					t.DiffAngle[c] = append(t.DiffAngle[c], a)
				}
				if t.Contract[b] {
					t.SameAngle[c] = append(t.SameAngle[c], a)
				}
			}
			if b > c {
				t.Angle[c] = append(t.Angle[c], b)
				if !t.Contract[a] && !t.Contract[b] && !t.Contract[c] {
					t.DiffAngle[c] = append(t.DiffAngle[c], b)
				}
				if t.Contract[a] {
					t.SameAngle[c] = append(t.SameAngle[c], b)
				}
			}
		}
	}

	if len(pairs) == 4 {
		if err := checkTriad(cfg, pairs); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// checkTriad verifies that some interior vertex has at least three
// neighbours among the contract endpoints and either has degree >= 6 or
// has every contract endpoint among its neighbours.
func checkTriad(cfg *confmat.Configuration, pairs [][2]int) error {
	endpoints := map[int]bool{}
	for _, p := range pairs {
		endpoints[p[0]] = true
		endpoints[p[1]] = true
	}
	for v := cfg.Ring + 1; v <= cfg.N; v++ {
		count := 0
		for i := 0; i < cfg.Degree[v]; i++ {
			if endpoints[cfg.Adj[v][i]] {
				count++
			}
		}
		if count < 3 {
			continue
		}
		if cfg.Degree[v] >= 6 {
			return nil
		}
		neighbour := map[int]bool{}
		for i := 0; i < cfg.Degree[v]; i++ {
			neighbour[cfg.Adj[v][i]] = true
		}
		all := true
		for e := range endpoints {
			if !neighbour[e] {
				all = false
				break
			}
		}
		if all {
			return nil
		}
	}
	return verifyerr.New(verifyerr.CategoryStructuralInvariant, 20, "contract of size 4 declared without a triad")
}
