// Package limits holds the bit-exact capacity constants shared by every
// engine package. These are the verifier's fixed proof-format constants,
// not tuning knobs — spec's Design Notes require them reproduced verbatim.
package limits

const (
	// Verts is the maximum vertex count of a configuration's free completion.
	Verts = 27
	// Deg is the maximum stored degree-plus-neighbour-list width in a
	// packed confmat row (degree in column 0, neighbours in 1..d).
	Deg = 13
	// Confs is the capacity of the reducible-configuration catalog.
	Confs = 640
	// MaxVal is the maximum admissible vertex degree (hub or neighbour).
	MaxVal = 12
	// Infty represents "no finite upper bound" for an axle degree interval.
	Infty = 12
	// MaxOutlets bounds the global outlet table.
	MaxOutlets = 110
	// MaxStr bounds a single input line's length.
	MaxStr = 256
	// MaxSym bounds the registered-symmetry table per presentation.
	MaxSym = 50
	// MaxElist bounds the compressed subconfiguration edgelist buckets.
	MaxElist = 134
	// MaxAStack bounds the reducibility-recursion axle stack (§4.7 R).
	MaxAStack = 5
	// MaxLev bounds the presentation axle/condition stack depth.
	MaxLev = 12
	// MaxRing bounds ring size for matching-table and live-array sizing.
	MaxRing = 14
	// Edges is the maximum edge count of a free completion.
	Edges = 62
	// CartVert is the coordinate-space size of an axle: 5*MaxVal + 2.
	CartVert = 5*MaxVal + 2
)
