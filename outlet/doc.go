// Package outlet builds and queries outlets: the positioned degree-interval
// templates read from a rule file and matched against an axle to decide
// what discharging an outlet forces, permits, or reflects.
//
// Grounded on discharge.c's tp_outlet, ReadOutlets, DoOutlet, OutletForced,
// OutletPermitted, ReflForced and PrintOutlet. Errors are returned as
// verifyerr.VerificationError values; there are no construction options.
package outlet
