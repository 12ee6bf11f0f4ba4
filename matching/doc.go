// Package matching implements the balanced-signed-matching closure that
// decides D-reducibility: it enumerates every balanced signed matching of
// the ring, tests whether all of its associated ring-colouring codes are
// still live, and iterates the matching/live-update pass to a fixed point.
//
// Two matching families are generated: those with no match touching ring
// position `ring` ("non-ring"), and those with one ("ring-incident"); the
// two use different weight formulas because a ring-incident match encodes
// the twist that can flip a colouring's sign. See §4.4 MatchingEngine.
package matching
