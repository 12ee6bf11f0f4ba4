package hubcap

import "github.com/katalvlaran/fourcolor/outlet"

// PositionedOutlet pairs a rule-table outlet with the hub-spoke anchor x it
// is being tried at. CheckBound's case tree is a search over assignments of
// {forced, rejected, undecided} to a slice of these. Grounded on the
// posout array CheckHubcap builds in discharge.c.
type PositionedOutlet struct {
	T *outlet.Outlet
	X int
}

// Member is one hubcap entry (x,y,v): outlets positioned at hub-spokes x
// and y (x==y for a self-loop entry) jointly carry at most v of the
// residual charge. Grounded on the (x[i],y[i],v[i]) triples CheckHubcap
// parses off a hubcap presentation line.
type Member struct {
	X, Y, V int
}
