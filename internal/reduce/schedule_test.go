package reduce

import (
	"testing"

	"f4gbc/internal/order"
	"f4gbc/internal/term"
)

func TestBuildScheduleOrdersDependentLevels(t *testing.T) {
	m := term.NewMonoid(1)
	ord := order.NewDegRevLex(m)
	_ = ord

	// Two pivot columns t1 < t2 (by degree), both with row 2 as consumer.
	// Row 2 is the target of one operation per column (operator row 0 for
	// t1, operator row 1 for t2). Two operations writing the same row cannot
	// share a level, and columns are scheduled in ascending order, so the t1
	// elimination from row 2 must land in an earlier level than the t2 one.
	t1 := m.Make([]uint16{1})
	t2 := m.Make([]uint16{2})

	rows := []rowDef{
		{Basis: 0, Target: t1, IsPivot: true}, // row 0: pivot for t1
		{Basis: 1, Target: t2, IsPivot: true}, // row 1: pivot for t2
		{Basis: 2, Target: t1, IsPivot: false}, // row 2: consumer of both t1 and t2
	}
	pivots := map[*term.Term]int{t1: 0, t2: 1}
	pivotOps := map[*term.Term][]rowContribution{
		t1: {{Row: 2, Coeff: 5}},
		t2: {{Row: 2, Coeff: 7}},
	}
	pivotTermsAsc := []*term.Term{t1, t2} // ascending under ord: t1 before t2

	levels := buildSchedule(rows, pivots, pivotOps, pivotTermsAsc)

	if len(levels) < 2 {
		t.Fatalf("expected at least 2 levels since row 2 is the target of two operations, got %d", len(levels))
	}
	// Find which level eliminates t1 from row 2, and which eliminates t2
	// from row 2; the former must precede the latter.
	levelOf := func(target, oper int) int {
		for lvl, ops := range levels {
			for _, op := range ops {
				if op.Target == target && op.Oper == oper {
					return lvl
				}
			}
		}
		return -1
	}
	l1 := levelOf(2, 0)
	l2 := levelOf(2, 1)
	if l1 < 0 || l2 < 0 {
		t.Fatalf("expected both scheduled operations to be present, got l1=%d l2=%d", l1, l2)
	}
	if l1 >= l2 {
		t.Fatalf("expected eliminating t1 from row 2 (level %d) to precede eliminating t2 from row 2 (level %d)", l1, l2)
	}
}

func TestBuildScheduleParallelWithinLevel(t *testing.T) {
	m := term.NewMonoid(1)
	t1 := m.Make([]uint16{1})

	rows := []rowDef{
		{Basis: 0, Target: t1, IsPivot: true},
		{Basis: 1, Target: t1, IsPivot: false},
		{Basis: 2, Target: t1, IsPivot: false},
	}
	pivots := map[*term.Term]int{t1: 0}
	pivotOps := map[*term.Term][]rowContribution{
		t1: {{Row: 1, Coeff: 1}, {Row: 2, Coeff: 1}},
	}
	levels := buildSchedule(rows, pivots, pivotOps, []*term.Term{t1})
	if len(levels) != 1 {
		t.Fatalf("expected both independent consumers to land in a single level, got %d levels", len(levels))
	}
	if len(levels[0]) != 2 {
		t.Fatalf("expected 2 operations in the single level, got %d", len(levels[0]))
	}
}

func TestBuildScheduleTrimsTrailingEmptyLevel(t *testing.T) {
	levels := buildSchedule(nil, map[*term.Term]int{}, map[*term.Term][]rowContribution{}, nil)
	if len(levels) != 0 {
		t.Fatalf("expected no levels for an empty schedule, got %d", len(levels))
	}
}
