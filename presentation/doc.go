// Package presentation replays a discharging presentation's axle-case
// tree: the nested sequence of condition splits ("C"), symmetry checks
// ("S"), reducibility tests ("R"), and hubcap declarations ("H") that
// make up one level of [D]'s cartwheel argument.
//
// Engine owns the axle stack and the registered-symmetry table across a
// whole presentation replay — the same role discharge.c's main() plays
// with its locally-declared axles/sym arrays, just promoted out of a
// static-local C array into an explicit owned struct. Grounded on
// discharge.c's CheckCondition, CheckSymmetry, and the symmetry/axle
// bookkeeping in main().
package presentation
