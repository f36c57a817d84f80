package reduce

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestParallelForCoversEveryIndex(t *testing.T) {
	const n = 1000
	seen := make([]int32, n)
	err := parallelFor(4, n, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range seen {
		if v != 1 {
			t.Fatalf("index %d touched %d times, want exactly 1", i, v)
		}
	}
}

func TestParallelForPropagatesError(t *testing.T) {
	sentinel := errors.New("boom")
	err := parallelFor(4, 10, func(lo, hi int) error {
		if lo == 0 {
			return sentinel
		}
		return nil
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error to propagate, got %v", err)
	}
}

func TestParallelForRecoversPanic(t *testing.T) {
	err := parallelFor(2, 10, func(lo, hi int) error {
		if lo == 0 {
			panic("worker fault")
		}
		return nil
	})
	if err == nil {
		t.Fatalf("expected panic to surface as an error")
	}
}

func TestParallelStrideVisitsExactSequence(t *testing.T) {
	var got []int
	var mu sync.Mutex
	err := parallelStride(3, 2, 2, 12, func(j int) error {
		mu.Lock()
		got = append(got, j)
		mu.Unlock()
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[int]bool{2: true, 4: true, 6: true, 8: true, 10: true}
	if len(got) != len(want) {
		t.Fatalf("expected %d stride indices, got %d (%v)", len(want), len(got), got)
	}
	for _, j := range got {
		if !want[j] {
			t.Fatalf("unexpected stride index %d", j)
		}
	}
}
