package outlet

// Outlet is a positioned degree-interval template: NoLines coordinate
// constraints (Pos[i] in [Low[i],Upp[i]]) relative to a reference vertex,
// plus the signed discharge Value this outlet contributes when it applies.
// Grounded on tp_outlet.
type Outlet struct {
	Number  int // +/- rule number, never 0
	NoLines int // number of (pos,low,upp) constraints, |M(T)|
	Value   int // +1 or -1
	Pos     [17]int
	Low     [17]int
	Upp     [17]int
}
