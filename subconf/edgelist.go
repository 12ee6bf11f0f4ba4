package subconf

import (
	"fmt"

	"github.com/katalvlaran/fourcolor/axle"
	"github.com/katalvlaran/fourcolor/internal/limits"
	"github.com/katalvlaran/fourcolor/internal/verifyerr"
)

// Edgelist buckets, by (higher-degree, lower-degree) endpoint pair, every
// adjacent vertex pair (u,v) of an axle's skeleton whose degrees match
// that bucket — the candidate root edges SubConf scans when trying to
// place a question's first two anchors. Grounded on tp_edgelist.
type Edgelist struct {
	buckets [12][9][]int // buckets[a][b] holds u0,v0,u1,v1,...
}

// Pairs returns the (u,v) pairs bucketed under (a,b).
func (e *Edgelist) Pairs(a, b int) []int {
	if a < 0 || a >= 12 || b < 0 || b >= 9 {
		return nil
	}
	return e.buckets[a][b]
}

// Build computes a2x's edgelist: every skeleton edge (u,v), bucketed
// under (degree(u),degree(v)) (and its reverse, subject to the same a<=11,
// b<=8 admission rule as the original). Grounded on GetEdgelist.
func Build(a2x *axle.Axle) (*Edgelist, error) {
	deg := a2x.Upp[0]
	e := &Edgelist{}

	addErr := error(nil)
	add := func(u, v int) {
		if addErr != nil {
			return
		}
		if err := e.add(u, v, &a2x.Upp); err != nil {
			addErr = err
		}
	}

	for i := 1; i <= deg; i++ {
		add(0, i)
		h := deg
		if i != 1 {
			h = i - 1
		}
		add(i, h)
		a := deg + h
		b := deg + i
		add(i, a)
		add(i, b)
		if a2x.Low[i] != a2x.Upp[i] {
			continue
		}
		if a2x.Upp[i] == 5 {
			add(a, b)
			continue
		}
		c := 2*deg + i
		add(a, c)
		add(i, c)
		if a2x.Upp[i] == 6 {
			add(b, c)
			continue
		}
		d := 3*deg + i
		add(c, d)
		add(i, d)
		if a2x.Upp[i] == 7 {
			add(b, d)
			continue
		}
		if a2x.Upp[i] != 8 {
			return nil, verifyerr.New(verifyerr.CategoryStructuralInvariant, 36, "unexpected fan degree in GetEdgelist")
		}
		f := 4*deg + i
		add(d, f)
		add(i, f)
		add(b, f)
	}
	if addErr != nil {
		return nil, addErr
	}
	return e, nil
}

// add buckets the pair (u,v) under (degree(u),degree(v)) when
// degree(u)>=degree(v), degree(v)<=8 and degree(u)<=11 (u==0 exempted
// from the degree(u)<=8 half of that rule), and symmetrically for (v,u).
// Grounded on AddToList — unlike the original, an overflow on either
// branch always returns a descriptive error instead of silently matching
// a dropped diagnostic on one of the two symmetric paths.
func (e *Edgelist) add(u, v int, degree *axle.Vertices) error {
	a, b := degree[u], degree[v]
	if a >= b && b <= 8 && a <= 11 && (a <= 8 || u == 0) {
		if err := e.push(a, b, u, v); err != nil {
			return err
		}
	}
	if b >= a && a <= 8 && b <= 11 && (b <= 8 || v == 0) {
		if err := e.push(b, a, v, u); err != nil {
			return err
		}
	}
	return nil
}

func (e *Edgelist) push(a, b, u, v int) error {
	if len(e.buckets[a][b])+2 >= limits.MaxElist {
		return verifyerr.New(verifyerr.CategoryResource, 39,
			fmt.Sprintf("more than %d entries in edgelist needed", limits.MaxElist))
	}
	e.buckets[a][b] = append(e.buckets[a][b], u, v)
	return nil
}
