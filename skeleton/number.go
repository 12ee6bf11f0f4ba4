package skeleton

import (
	"github.com/katalvlaran/fourcolor/confmat"
	"github.com/katalvlaran/fourcolor/internal/limits"
)

// EdgeNo is a 1-indexed-by-vertex-pair table: EdgeNo[u][v] is the canonical
// number of edge (u,v), or 0 if u,v are not adjacent.
type EdgeNo [limits.Verts + 1][limits.Verts + 1]int

// Number assigns the canonical edge numbering of cfg's free completion:
// ring edges first (1..r), then interior edges chosen so each edge has as
// many later edges as possible sharing a triangle with it.
//
// Grounded on the original `strip`: an interior-first greedy phase picks,
// at each step, the not-yet-numbered interior vertex whose neighbour list
// meets the already-numbered vertices in the longest contiguous interval
// (ties broken by higher degree), numbering its edges to that interval in
// descending order from the top; then a ring-interior phase numbers the
// remaining ring-to-interior edges.
func Number(cfg *confmat.Configuration) EdgeNo {
	var edgeno EdgeNo

	verts, ring := cfg.N, cfg.Ring
	for v := 1; v <= ring; v++ {
		u := v - 1
		if v == 1 {
			u = ring
		}
		edgeno[u][v] = v
		edgeno[v][u] = v
	}

	done := make([]bool, verts+1)
	term := 3*(verts-1) - ring

	for x := ring + 1; x <= verts; x++ {
		best := pickInteriorBest(cfg, done, ring, verts)
		term = numberFromVertex(cfg, &edgeno, done, best, term)
		done[best] = true
		_ = x
	}

	for x := 1; x <= ring; x++ {
		best := pickRingBest(cfg, done, ring)
		term = numberRingToInterior(cfg, &edgeno, done, best, ring, term)
		done[best] = true
		_ = x
	}

	return edgeno
}

// pickInteriorBest chooses the not-yet-done interior vertex whose adjacency
// meets the done set in the longest interval, breaking ties by degree.
func pickInteriorBest(cfg *confmat.Configuration, done []bool, ring, verts int) int {
	maxInt, best := 0, 0
	var candidates []int
	for v := ring + 1; v <= verts; v++ {
		if done[v] {
			continue
		}
		inter := inInterval(cfg, v, done)
		if inter > maxInt {
			maxInt = inter
			candidates = []int{v}
		} else if inter == maxInt {
			candidates = append(candidates, v)
		}
	}
	maxDeg := 0
	for _, v := range candidates {
		if cfg.Degree[v] > maxDeg {
			maxDeg = cfg.Degree[v]
			best = v
		}
	}
	return best
}

// inInterval reports the length of the contiguous run of "done" vertices
// in v's clockwise neighbour list, wrapping around the list's ends, or 0 if
// the done neighbours do not form a single interval.
func inInterval(cfg *confmat.Configuration, v int, done []bool) int {
	d := cfg.Degree[v]
	nbr := func(i int) int { return cfg.Adj[v][i-1] } // 1-indexed helper

	first := 1
	for first < d && !done[nbr(first)] {
		first++
	}
	if first == d {
		if done[nbr(d)] {
			return 1
		}
		return 0
	}
	last := first
	for last < d && done[nbr(last+1)] {
		last++
	}
	length := last - first + 1
	if last == d {
		return length
	}
	if first > 1 {
		for j := last + 2; j <= d; j++ {
			if done[nbr(j)] {
				return 0
			}
		}
		return length
	}
	worried := false
	for j := last + 2; j <= d; j++ {
		if done[nbr(j)] {
			length++
			worried = true
		} else if worried {
			return 0
		}
	}
	return length
}

// numberFromVertex numbers best's edges to its done-neighbour arc in
// descending order starting at term, mirroring strip's inner while/for.
func numberFromVertex(cfg *confmat.Configuration, edgeno *EdgeNo, done []bool, best int, term int) int {
	d := cfg.Degree[best]
	nbr := func(i int) int { return cfg.Adj[best][i-1] }

	first := 1
	previous := done[nbr(d)]
	for previous || !done[nbr(first)] {
		previous = done[nbr(first)]
		first++
		if first > d {
			first = 1
			break
		}
	}

	for h := first; done[nbr(h)]; {
		edgeno[best][nbr(h)] = term
		edgeno[nbr(h)][best] = term
		term--
		if h == d {
			if first == 1 {
				break
			}
			h = 0
		}
		h++
	}
	return term
}

// pickRingBest chooses the not-yet-done ring vertex maximizing
// 3*degree + 4*(done(prev)+done(next)).
func pickRingBest(cfg *confmat.Configuration, done []bool, ring int) int {
	maxInt, best := 0, 0
	for v := 1; v <= ring; v++ {
		if done[v] {
			continue
		}
		u := v - 1
		if v == 1 {
			u = ring
		}
		w := v + 1
		if v == ring {
			w = 1
		}
		score := 3*cfg.Degree[v] + 4*(boolInt(done[u])+boolInt(done[w]))
		if score > maxInt {
			maxInt = score
			best = v
		}
	}
	return best
}

// numberRingToInterior numbers the interior edges leaving ring vertex best,
// preferring the direction whose immediate neighbour is already done.
func numberRingToInterior(cfg *confmat.Configuration, edgeno *EdgeNo, done []bool, best, ring, term int) int {
	d := cfg.Degree[best]
	u := best - 1
	if best == 1 {
		u = ring
	}
	if done[u] {
		for h := d - 1; h >= 2; h-- {
			nb := cfg.Adj[best][h-1]
			edgeno[best][nb] = term
			edgeno[nb][best] = term
			term--
		}
	} else {
		for h := 2; h < d; h++ {
			nb := cfg.Adj[best][h-1]
			edgeno[best][nb] = term
			edgeno[nb][best] = term
			term--
		}
	}
	return term
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
