package groebner

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Threads < 1 {
		t.Fatalf("expected DefaultConfig to give at least 1 thread")
	}
	if cfg.Simplify != SimplifyDatabase {
		t.Fatalf("expected DefaultConfig to select the concurrent simplify database")
	}
	if !cfg.SugarSelection {
		t.Fatalf("expected DefaultConfig to enable the sugar heuristic")
	}
}
