// Package util carries the ambient logging helpers shared by the driver and
// its command-line front end.
package util

import (
	"log"
	"time"
)

// Log logs a message if verbose is true.
func Log(verbose bool, format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

// StepLogger reports progress through the degree-by-degree main loop: one
// line per selection round, showing how many pairs were pulled in, how big
// the resulting matrix was, and how many new basis members it produced.
// Unlike a percent-of-total progress bar, the loop has no known event count
// up front — the computation runs until the pair set empties, and how many
// rounds that takes depends on what earlier rounds produce — so this
// reports absolute counts per round instead of a percentage.
type StepLogger struct {
	enabled   bool
	startTime time.Time
	round     int
}

// NewStepLogger creates a step logger; when enable is false all methods are
// no-ops.
func NewStepLogger(enable bool) *StepLogger {
	return &StepLogger{enabled: enable, startTime: time.Now()}
}

// Round reports the start of a degree step: the sugar degree selected and
// how many pairs were pulled from the pair set for it.
func (sl *StepLogger) Round(sugar uint32, pairs, basisSize int) {
	if !sl.enabled {
		return
	}
	sl.round++
	log.Printf("step %d: sugar=%d pairs=%d basis=%d elapsed=%s",
		sl.round, sugar, pairs, basisSize, time.Since(sl.startTime).Round(time.Millisecond))
}

// Matrix reports the shape of the reduction matrix built for the current
// round.
func (sl *StepLogger) Matrix(rows, cols int) {
	if !sl.enabled {
		return
	}
	log.Printf("  matrix: %d rows x %d cols", rows, cols)
}

// Produced reports how many new polynomials the round's matrix reduction
// yielded.
func (sl *StepLogger) Produced(n int) {
	if !sl.enabled {
		return
	}
	log.Printf("  produced %d new polynomial(s)", n)
}

// Done reports final completion: total elapsed time and final basis size.
func (sl *StepLogger) Done(basisSize int) {
	if !sl.enabled {
		return
	}
	log.Printf("done: %d rounds, basis size=%d, elapsed=%s",
		sl.round, basisSize, time.Since(sl.startTime).Round(time.Millisecond))
}
