package subconf

import (
	"github.com/katalvlaran/fourcolor/axle"
	"github.com/katalvlaran/fourcolor/confmat"
	"github.com/katalvlaran/fourcolor/internal/limits"
	"github.com/katalvlaran/fourcolor/internal/verifyerr"
)

func isoErr(lineno int, reason string) error {
	return verifyerr.New(verifyerr.CategoryMatcherInvariant, lineno, reason).WithLine(lineno)
}

func induCheck(aa, bb bool, cc int, lineno int) error {
	if aa && bb && cc != 1 {
		return isoErr(lineno, "isomorphism not induced")
	}
	return nil
}

// CheckIso independently re-verifies that image is a well-positioned
// induced-subconfiguration isomorphism between cfg's free completion and
// the skeleton of a2x, re-deriving everything SubConf/RootedSubConf
// assumed rather than trusting their bookkeeping. Grounded on CheckIso.
func CheckIso(cfg *confmat.Configuration, a2x *axle.Axle, image axle.Vertices, lineno int) error {
	deg := a2x.Low[0]
	verts := cfg.N
	ring := cfg.Ring
	adjmat := axle.BuildAdjMat(a2x)

	var x [limits.CartVert][limits.CartVert]int
	var used [limits.CartVert]bool

	for u := ring + 1; u <= verts; u++ {
		fu := image[u]
		if fu < 0 || fu > 5*deg || used[fu] {
			return isoErr(lineno, "isomorphism error 1")
		}
		used[fu] = true
		if cfg.Degree[u] != a2x.Upp[fu] {
			return isoErr(lineno, "isomorphism error 2")
		}
		if fu > 2*deg {
			i := (fu-1)%deg + 1
			if a2x.Low[i] != a2x.Upp[i] || a2x.Low[i] < (fu-1)/deg+4 {
				return isoErr(lineno, "isomorphism error 3")
			}
		}
	}

	for i := 1; i <= deg; i++ {
		prev := deg + i - 1
		if i == 1 {
			prev = 2 * deg
		}
		if !used[i] && used[deg+i] && used[prev] {
			return isoErr(lineno, "isomorphism error 4")
		}
	}

	for u := ring + 1; u <= verts; u++ {
		d := cfg.Degree[u]
		last, _ := cfg.Neighbour(u, d-1)
		worried := last <= ring
		for i := 1; i <= d; i++ {
			v, _ := cfg.Neighbour(u, i-1)
			if v <= ring {
				worried = true
				continue
			}
			var xx, yy int
			if image[0] != 0 {
				xx, yy = image[u], image[v]
			} else {
				xx, yy = image[v], image[u]
			}
			x[xx][yy] = 1
			nextIdx := i + 1
			if i == d {
				nextIdx = 1
			}
			w, _ := cfg.Neighbour(u, nextIdx-1)
			if w <= ring {
				if worried {
					return isoErr(lineno, "isomorphism error 5")
				}
				continue
			}
			worried = false
			if adjmat.At(xx, yy) != image[w] {
				return isoErr(lineno, "isomorphism error 6")
			}
		}
	}

	for i := 1; i <= deg; i++ {
		h := deg
		if i != 1 {
			h = i - 1
		}
		if err := induCheck(used[0], used[i], x[0][i], lineno); err != nil {
			return err
		}
		if err := induCheck(used[h], used[i], x[h][i], lineno); err != nil {
			return err
		}
		a := h + deg
		if err := induCheck(used[h], used[a], x[h][a], lineno); err != nil {
			return err
		}
		if err := induCheck(used[i], used[a], x[i][a], lineno); err != nil {
			return err
		}
		if a2x.Low[i] != a2x.Upp[i] {
			continue
		}
		b := deg + i
		if a2x.Low[i] == 5 {
			if err := induCheck(used[a], used[b], x[a][b], lineno); err != nil {
				return err
			}
			continue
		}
		c := 2*deg + i
		if err := induCheck(used[a], used[c], x[a][c], lineno); err != nil {
			return err
		}
		if err := induCheck(used[c], used[i], x[c][i], lineno); err != nil {
			return err
		}
		if a2x.Low[i] == 6 {
			if err := induCheck(used[c], used[b], x[c][b], lineno); err != nil {
				return err
			}
			continue
		}
		dd := 3*deg + i
		if err := induCheck(used[c], used[dd], x[c][dd], lineno); err != nil {
			return err
		}
		if err := induCheck(used[dd], used[i], x[dd][i], lineno); err != nil {
			return err
		}
		if a2x.Low[i] == 7 {
			if err := induCheck(used[dd], used[b], x[dd][b], lineno); err != nil {
				return err
			}
			continue
		}
		e := 4*deg + i
		if a2x.Low[i] != 8 {
			return isoErr(lineno, "unexpected error in CheckIso")
		}
		if err := induCheck(used[e], used[dd], x[e][dd], lineno); err != nil {
			return err
		}
		if err := induCheck(used[e], used[i], x[e][i], lineno); err != nil {
			return err
		}
		if err := induCheck(used[e], used[b], x[e][b], lineno); err != nil {
			return err
		}
	}
	return nil
}
