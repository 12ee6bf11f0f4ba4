// Package contract re-verifies a configuration's declared contract when
// D-reducibility alone does not close the live set to empty.
//
// It re-enumerates ring colourings using diffangle/sameangle instead of
// angle, skipping contract edges (whose colour is forced to match the edge
// it is identified with), and fails if the enumeration ever reaches a ring
// code still marked live — meaning the contract does not in fact collapse
// every surviving colouring.
package contract
