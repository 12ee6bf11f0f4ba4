// Package narrate prints the progress narration both CLI programs emit
// while they work: per-configuration counters for the reducibility engine,
// indented per-level axle state for the discharging engine.
//
// It plays the role lvlath's flow.FlowOptions.Verbose flag plays for
// flow-algorithm tracing: an injectable io.Writer gated by a verbosity
// level, never a global logger.
package narrate

import (
	"fmt"
	"io"
)

// Level selects how much detail is printed, matching the discharging
// program's printmode argument (PRTLIN through PRTALL).
type Level int

const (
	// PRTLIN prints only which presentation line is being processed.
	PRTLIN Level = iota + 1
	// PRTBAS additionally prints basic per-axle state.
	PRTBAS
	// PRTPAI additionally prints forced/rejected outlet pairs.
	PRTPAI
	// PRTALL prints everything, including rejected-branch detail.
	PRTALL
)

// Printer writes progress narration to an underlying writer, gated by a
// verbosity level. A nil Printer (zero value with W == nil) discards all
// output, so callers can always narrate unconditionally.
type Printer struct {
	W     io.Writer
	Level Level
}

// New returns a Printer writing to w at the given level.
func New(w io.Writer, level Level) *Printer {
	return &Printer{W: w, Level: level}
}

func (p *Printer) enabled(min Level) bool {
	return p != nil && p.W != nil && p.Level >= min
}

// Linef prints at PRTLIN or above.
func (p *Printer) Linef(format string, args ...any) {
	if p.enabled(PRTLIN) {
		fmt.Fprintf(p.W, format, args...)
	}
}

// Basef prints at PRTBAS or above.
func (p *Printer) Basef(format string, args ...any) {
	if p.enabled(PRTBAS) {
		fmt.Fprintf(p.W, format, args...)
	}
}

// Pairf prints at PRTPAI or above.
func (p *Printer) Pairf(format string, args ...any) {
	if p.enabled(PRTPAI) {
		fmt.Fprintf(p.W, format, args...)
	}
}

// Allf prints at PRTALL only.
func (p *Printer) Allf(format string, args ...any) {
	if p.enabled(PRTALL) {
		fmt.Fprintf(p.W, format, args...)
	}
}

// Indent writes level*2 spaces, the discharging engine's fixed indent unit
// for nested CheckBound narration.
func (p *Printer) Indent(level int) {
	if !p.enabled(PRTBAS) {
		return
	}
	for i := 0; i < level; i++ {
		fmt.Fprint(p.W, "  ")
	}
}

// Status prints the reducibility engine's per-configuration line: ring
// size, colouring totals, and live-set size after each matching pass.
func (p *Printer) Status(ring, ncodes, nlive, pass int) {
	p.Basef("ring=%d ncodes=%d nlive=%d pass=%d\n", ring, ncodes, nlive, pass)
}
