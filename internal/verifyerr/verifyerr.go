// Package verifyerr defines the single failure taxonomy shared by the
// reducibility and discharging engines.
//
// Both programs treat verification failure as terminal: the first
// inconsistency detected anywhere aborts the whole run. What varies is the
// category (for diagnostics) and the process exit code (for scripting), so
// VerificationError carries both alongside the sentinel Category it wraps.
//
// Errors:
//
//	ErrIO                 - cannot open or premature EOF on an input file.
//	ErrFormat              - tokenizer/scanner mismatch in an input record.
//	ErrStructuralInvariant - Euler sum, ring adjacency, contract sparsity, radius.
//	ErrMatcherInvariant    - CheckIso mismatch, non-well-positioned image.
//	ErrMathematicalClaim   - reducibility/contract/hubcap/symmetry failure.
//	ErrResource            - out-of-memory or capacity overflow.
package verifyerr

import (
	"errors"
	"fmt"
)

// Category classifies why verification failed, per the taxonomy of spec §7.
type Category int

const (
	// CategoryIO covers file-open failures and premature EOF.
	CategoryIO Category = iota
	// CategoryFormat covers parser/tokenizer mismatches.
	CategoryFormat
	// CategoryStructuralInvariant covers Euler sum, ring adjacency, triad,
	// and radius violations.
	CategoryStructuralInvariant
	// CategoryMatcherInvariant covers CheckIso/SubConf disagreement.
	CategoryMatcherInvariant
	// CategoryMathematicalClaim covers reducibility, contract, hubcap, and
	// symmetry failures — the claims the proof itself depends on.
	CategoryMathematicalClaim
	// CategoryResource covers capacity overflows and allocation failure.
	CategoryResource
)

// String renders the category name used in diagnostic output.
func (c Category) String() string {
	switch c {
	case CategoryIO:
		return "IO"
	case CategoryFormat:
		return "Format"
	case CategoryStructuralInvariant:
		return "StructuralInvariant"
	case CategoryMatcherInvariant:
		return "MatcherInvariant"
	case CategoryMathematicalClaim:
		return "MathematicalClaim"
	case CategoryResource:
		return "Resource"
	default:
		return "Unknown"
	}
}

// Sentinel errors. Callers branch on these with errors.Is; VerificationError
// wraps one of them plus a process exit code.
var (
	ErrIO                  = errors.New("verifyerr: io failure")
	ErrFormat              = errors.New("verifyerr: format error")
	ErrStructuralInvariant = errors.New("verifyerr: structural invariant violated")
	ErrMatcherInvariant    = errors.New("verifyerr: matcher invariant violated")
	ErrMathematicalClaim   = errors.New("verifyerr: mathematical claim failed")
	ErrResource            = errors.New("verifyerr: resource exhausted")
)

func categorySentinel(c Category) error {
	switch c {
	case CategoryIO:
		return ErrIO
	case CategoryFormat:
		return ErrFormat
	case CategoryStructuralInvariant:
		return ErrStructuralInvariant
	case CategoryMatcherInvariant:
		return ErrMatcherInvariant
	case CategoryMathematicalClaim:
		return ErrMathematicalClaim
	case CategoryResource:
		return ErrResource
	default:
		return errors.New("verifyerr: unknown category")
	}
}

// VerificationError is the one failure type the two CLI entrypoints ever
// exit non-zero for. Code is the exact process exit status from spec §6;
// Line, when nonzero, is the presentation or configuration line number that
// triggered the failure (many exit codes in the original ARE the line
// number, reproduced here rather than folded into a generic "parse error").
type VerificationError struct {
	Category Category
	Code     int
	Line     int
	Reason   string
}

// Error implements the error interface.
func (e *VerificationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s (line %d)", e.Category, e.Reason, e.Line)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Reason)
}

// Unwrap exposes the category sentinel so callers can use errors.Is against
// ErrIO, ErrFormat, etc. without depending on the concrete type.
func (e *VerificationError) Unwrap() error {
	return categorySentinel(e.Category)
}

// New constructs a VerificationError. code is the exact §6 exit status;
// reason is a short human-readable diagnosis written to stderr by the CLI.
func New(cat Category, code int, reason string) *VerificationError {
	return &VerificationError{Category: cat, Code: code, Reason: reason}
}

// WithLine attaches a line number to an existing error (copy, not mutate).
func (e *VerificationError) WithLine(line int) *VerificationError {
	cp := *e
	cp.Line = line
	return &cp
}
