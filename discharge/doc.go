// Package discharge ties together axle, outlet, question, subconf, and
// hubcap into the discharging engine's two halves: an independent
// reducibility oracle (ReduceSet, grounded on discharge.c's Reduce/
// GetConf) used as CheckBound's fallback, and a presentation replay
// loop (VerifyPresentation, grounded on discharge.c's main) that dispatches every
// "L<lev> {S,R,H,C}" line to presentation.Engine and hubcap.CheckHubcap
// in turn.
package discharge
