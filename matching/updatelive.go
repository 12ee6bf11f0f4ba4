package matching

import "github.com/katalvlaran/fourcolor/coloring"

// UpdateLive computes C_{i+1} from C_i: a code survives iff all three
// matching-family bits fired (its byte equals AllFlags); the monochromatic
// code 0 is forced alive if any flag hit it at all. Returns the new live
// count and whether iteration should continue (strictly decreased and
// still positive).
func UpdateLive(live coloring.Live, prevNLive int) (int, bool) {
	if live[0] > 1 {
		live[0] = coloring.AllFlags
	}
	newNLive := 0
	for i := range live {
		if live[i] != coloring.AllFlags {
			live[i] = 0
		} else {
			newNLive++
			live[i] = coloring.BitCandidate
		}
	}
	cont := newNLive < prevNLive && newNLive > 0
	return newNLive, cont
}
