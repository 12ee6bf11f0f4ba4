// Package question precomputes a configuration's question: a fixed
// traversal order over its interior vertices together with, for every
// entry beyond the first two anchors, the triangle pin (u,v) an
// isomorphism candidate must already have placed before that entry's
// vertex can be resolved by adjacency lookup.
//
// Grounded on discharge.c's tp_question and GetQuestion; the breadth-first
// anchor-then-ring traversal marks each vertex with a single placed/unplaced
// flag as it walks each placed vertex's cyclic neighbour list.
package question
