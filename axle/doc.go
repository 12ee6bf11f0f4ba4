// Package axle holds the Axle type — the [low,upp] degree-interval vectors
// the discharging engine narrows as it descends a presentation's case
// tree — plus the two things derived purely from an axle's degree
// sequence: its clockwise adjacency matrix (with fan expansion for
// degree-5..8 hub neighbours) and its skeleton's radius.
//
// Grounded on `discharge.c`'s tp_axle, CopyAxle, Getadjmat, DoFan, and the
// packed dense-array accessor idiom of lvlath's matrix package.
package axle
