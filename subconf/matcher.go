package subconf

import (
	"github.com/katalvlaran/fourcolor/axle"
	"github.com/katalvlaran/fourcolor/internal/limits"
	"github.com/katalvlaran/fourcolor/question"
)

// RootedSubConf tries to extend the root-edge placement (x,y) — clockwise
// if clockwise is true, counterclockwise otherwise — into a full induced
// embedding of q into adjmat, following q's traversal order and checking
// each newly placed vertex's claimed degree and injectivity as it goes.
// Grounded on RootedSubConf.
func RootedSubConf(degree *axle.Vertices, adjmat *axle.AdjMat, q *question.Question, x, y int, clockwise bool) (axle.Vertices, bool) {
	var used [limits.CartVert]bool
	var image axle.Vertices
	for j := range image {
		image[j] = -1
	}
	if clockwise {
		image[0] = 1
	} else {
		image[0] = 0
	}
	image[q.Queries[0].Z] = x
	image[q.Queries[1].Z] = y
	used[x] = true
	used[y] = true

	for idx := 2; idx < len(q.Queries); idx++ {
		qi := q.Queries[idx]
		if qi.U < 0 {
			break
		}
		var w int
		if clockwise {
			w = adjmat.At(image[qi.U], image[qi.V])
		} else {
			w = adjmat.At(image[qi.V], image[qi.U])
		}
		if w == -1 {
			return image, false
		}
		if qi.Xi != 0 && qi.Xi != degree[w] {
			return image, false
		}
		if used[w] {
			return image, false
		}
		image[qi.Z] = w
		used[w] = true
	}

	deg := degree[0]
	for j := 1; j <= deg; j++ {
		if used[j] || !used[deg+j] {
			continue
		}
		prev := deg + j - 1
		if j == 1 {
			prev = 2 * deg
		}
		if used[prev] {
			return image, false
		}
	}
	return image, true
}

// SubConf tests, per [D, theorem (6.3)], whether q is a well-positioned
// induced subconfiguration of adjmat's skeleton: scans every candidate
// root edge bucketed under (q's two anchor degrees) and tries both
// orientations at each. Grounded on SubConf.
func SubConf(adjmat *axle.AdjMat, degree *axle.Vertices, q *question.Question, edgelist *Edgelist) (axle.Vertices, bool) {
	pairs := edgelist.Pairs(q.Queries[0].Xi, q.Queries[1].Xi)
	for i := 0; i+1 < len(pairs); i += 2 {
		x, y := pairs[i], pairs[i+1]
		if img, ok := RootedSubConf(degree, adjmat, q, x, y, true); ok {
			return img, true
		}
		if img, ok := RootedSubConf(degree, adjmat, q, x, y, false); ok {
			return img, true
		}
	}
	return axle.Vertices{}, false
}
