package question

import "github.com/katalvlaran/fourcolor/confmat"

// Query is one question entry: Z is the vertex this entry resolves, Xi is
// its claimed degree (0 if Z is a ring vertex, unconstrained), and U, V
// are the two already-placed vertices whose adjmat triangle locates Z
// (U, V are themselves vertex indices only for entries >= 2; entry 1
// additionally overloads U, V to carry the free completion's vertex count
// and ring size). Grounded on tp_query.
type Query struct {
	Z, Xi, U, V int
}

// Question is a configuration's precomputed traversal: Queries[0] and
// Queries[1] are the two maximum-degree interior anchors, Queries[2:] is
// the closure chain, and a final entry with U == -1 marks the end.
// Grounded on tp_question.
type Question struct {
	Queries []Query
	NVerts  int
	Ring    int
}

func nextH(h, d int) int {
	if h == d {
		return 1
	}
	return h + 1
}

func prevH(h, d int) int {
	if h == 1 {
		return d
	}
	return h - 1
}

func neighbourAt(cfg *confmat.Configuration, v, h int) int {
	n, _ := cfg.Neighbour(v, h-1)
	return n
}

func xiOf(cfg *confmat.Configuration, ring, w int) int {
	if w > ring {
		return cfg.Degree[w]
	}
	return 0
}

// Get computes cfg's question. Grounded on GetQuestion: pick the two
// highest-degree interior anchors, then for every already-placed vertex
// in turn walk its neighbour cycle both backward and forward from the
// first unplaced neighbour, recording each newly reached interior vertex
// together with the triangle pin that locates it, and — when the
// backward and forward scans left a gap longer than two steps — chaining
// through the remaining interior vertices between them.
func Get(cfg *confmat.Configuration) *Question {
	nverts := cfg.N
	ring := cfg.Ring
	found := make([]bool, nverts+1)
	q := make([]Query, nverts+2)

	q[1].U = nverts
	q[1].V = ring

	best, max := 0, 0
	for vtx := ring + 1; vtx <= nverts; vtx++ {
		if cfg.Degree[vtx] > max {
			max, best = cfg.Degree[vtx], vtx
		}
	}
	q[0].Z = best
	q[0].Xi = cfg.Degree[best]
	found[best] = true

	secondBest, max2 := 0, 0
	for i := 0; i < cfg.Degree[best]; i++ {
		vtx := cfg.Adj[best][i]
		if vtx <= ring {
			continue
		}
		if cfg.Degree[vtx] > max2 {
			max2, secondBest = cfg.Degree[vtx], vtx
		}
	}
	q[1].Z = secondBest
	q[1].Xi = cfg.Degree[secondBest]
	found[secondBest] = true

	nfound := 2
	for search := 0; search < nfound; search++ {
		vtx := q[search].Z
		if vtx <= ring {
			continue
		}
		d := cfg.Degree[vtx]

		i := 1
		for i <= d && !found[neighbourAt(cfg, vtx, i)] {
			i++
		}
		if i > d {
			continue
		}

		h := d
		if i != 1 {
			h = i - 1
		}
		var backU int
		for h != i {
			backU = neighbourAt(cfg, vtx, h)
			if backU <= ring {
				break
			}
			if !found[backU] {
				q[nfound].Z = backU
				q[nfound].Xi = xiOf(cfg, ring, backU)
				q[nfound].U = neighbourAt(cfg, vtx, nextH(h, d))
				q[nfound].V = vtx
				nfound++
				found[backU] = true
			}
			h = prevH(h, d)
		}
		if h == i {
			continue
		}

		j := i + 1
		if i == d {
			j = 1
		}
		for {
			w := neighbourAt(cfg, vtx, j)
			if w <= ring {
				break
			}
			if !found[w] {
				q[nfound].Z = w
				q[nfound].Xi = xiOf(cfg, ring, w)
				q[nfound].U = vtx
				q[nfound].V = neighbourAt(cfg, vtx, prevH(j, d))
				nfound++
				found[w] = true
			}
			j = nextH(j, d)
		}

		r := h - j
		if h < j {
			r = h - j + d
		}
		if r <= 2 {
			continue
		}

		q[nfound].Z = backU
		q[nfound].Xi = xiOf(cfg, ring, backU)
		q[nfound].U = neighbourAt(cfg, vtx, nextH(h, d))
		q[nfound].V = vtx
		nfound++

		for g := prevH(h, d); g != j; g = prevH(g, d) {
			t := neighbourAt(cfg, vtx, g)
			q[nfound].Z = t
			q[nfound].Xi = xiOf(cfg, ring, t)
			q[nfound].U = q[nfound-1].Z
			q[nfound].V = vtx
			nfound++
			found[t] = true
		}
	}

	q[nfound].U = -1
	return &Question{Queries: q[:nfound+1], NVerts: nverts, Ring: ring}
}
