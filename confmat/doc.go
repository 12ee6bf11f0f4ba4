// Package confmat parses and validates configuration records — the free
// completions of near-triangulated plane graphs that are the leaves of both
// the reducibility and the discharging engines.
//
// What: one Configuration per record (name, n, ring size, declared
// extendable-colouring count, optional contract, clockwise adjacency lists).
//
// Why: every other package downstream (skeleton, coloring, matching,
// contract, question, subconf) operates on a Configuration's packed
// adjacency; a single malformed record must fail loudly here rather than
// corrupt a later stage silently.
//
// Complexity: ReadNext is O(n·d); Validate is O(n·d); CheckRadius, which
// Validate does not call, is O(n²) (BFS from each interior vertex — n ≤
// Verts so this is cheap).
//
// Errors: all returned errors wrap verifyerr.ErrFormat (scanner failures) or
// verifyerr.ErrStructuralInvariant (any of the seven invariants of the
// configuration data model).
package confmat
