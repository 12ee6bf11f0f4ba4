// Package reduction orchestrates the reducibility pipeline: ConfigurationIO
// -> Skeleton&Angles -> ColouringEnumerator -> MatchingEngine (closure) ->
// ContractChecker, for one configuration at a time.
//
// Grounded on `main` in the original reducibility program: read a record,
// build angle tables, find the initial live set, iterate the matching pass
// and live update to a fixed point, then confirm the contract if the live
// set did not empty.
package reduction
