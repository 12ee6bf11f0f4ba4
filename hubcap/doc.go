// Package hubcap verifies a discharging case's hubcap: that its members'
// declared double-cover cost doesn't exceed (H2), and that the forced
// charge from every combination of positioned outlets never exceeds a
// member's allotted bound (H1) without the underlying axle being
// independently reducible.
//
// CheckBound explores the combinatorial tree of "force this positioned
// outlet / reject it" decisions with an explicit work stack rather than
// native recursion, in the branch-and-bound idiom of lvlath's tsp
// package. Grounded on discharge.c's CheckHubcap and CheckBound.
package hubcap
