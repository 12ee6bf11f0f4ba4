package axle

import "github.com/katalvlaran/fourcolor/confmat"

// Radius verifies that cfg's free completion has some interior vertex
// reaching every other interior vertex within two steps, the invariant
// every member of the unavoidable set must satisfy before GetQuestion can
// run on it. Grounded on Radius; delegates to the same BFS eccentricity
// check confmat.Validate's callers use, since Radius(L) and
// Configuration.CheckRadius operate on the identical packed adjacency
// representation.
func Radius(cfg *confmat.Configuration) error {
	return cfg.CheckRadius()
}
