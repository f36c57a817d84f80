package util

import "testing"

func TestStepLoggerDisabledIsNoop(t *testing.T) {
	sl := NewStepLogger(false)
	// None of these should panic even though no output sink is captured;
	// disabled loggers must be safe zero-cost no-ops.
	sl.Round(3, 2, 1)
	sl.Matrix(4, 5)
	sl.Produced(1)
	sl.Done(6)
}

func TestStepLoggerEnabledTracksRounds(t *testing.T) {
	sl := NewStepLogger(true)
	if sl.round != 0 {
		t.Fatalf("expected round counter to start at 0")
	}
	sl.Round(1, 2, 3)
	if sl.round != 1 {
		t.Fatalf("expected round counter to increment on Round, got %d", sl.round)
	}
	sl.Round(2, 2, 3)
	if sl.round != 2 {
		t.Fatalf("expected round counter to increment again, got %d", sl.round)
	}
}
