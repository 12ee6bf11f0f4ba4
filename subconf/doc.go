// Package subconf matches a configuration's precomputed question against
// an axle's skeleton: GetEdgelist buckets candidate root edges by the
// endpoint degrees a question's first two entries require, RootedSubConf
// walks the question from a candidate root trying to build a full
// embedding, and CheckIso independently re-verifies a reported embedding
// from scratch.
//
// Grounded on discharge.c's GetEdgelist/AddToList, RootedSubConf/SubConf,
// and CheckIso.
package subconf
