// Package groebner is the public entry point (C8): it wires the term
// monoid, ordering, field, pair manager, simplify database, and reduction
// engine into the degree-by-degree Buchberger/F4 main loop and returns a
// Gröbner basis of the input ideal.
package groebner

// SimplifyMode selects which simplify database implementation, if any,
// backs a computation.
type SimplifyMode int

const (
	// SimplifyOff disables the simplify database: every row is reduced
	// against the raw basis polynomial, with no memoized representative.
	SimplifyOff SimplifyMode = iota
	// SimplifyInMemory uses the single-threaded FlatDB, appropriate when
	// Threads == 1 or when reduced lock contention isn't worth the extra
	// bookkeeping.
	SimplifyInMemory
	// SimplifyDatabase uses the concurrency-safe ConcurrentDB, the
	// production path under multiple worker threads.
	SimplifyDatabase
)

// Config carries the recognized computation options (§6).
type Config struct {
	// Threads is the worker-pool width used by the reduction engine's
	// fork-join regions. Values below 1 are treated as 1.
	Threads int
	// BlockSize is the minimum row width, in monomials, before symbolic
	// preprocessing parallelizes a single row's term multiplication.
	BlockSize int
	// Simplify selects the simplify database mode.
	Simplify SimplifyMode
	// SugarSelection enables the sugar heuristic for pair-batch selection.
	// When false, pair batches are selected by the lcm's plain total
	// degree instead (the "normal strategy").
	SugarSelection bool
	// Verbosity enables step-by-step progress logging when nonzero.
	Verbosity int
}

// DefaultConfig returns the recommended configuration: sugar-driven
// selection, the concurrent simplify database, and one worker per
// available core is left to the caller (Threads defaults to 1 here since
// runtime.NumCPU() is a policy decision the CLI front end makes, not the
// library).
func DefaultConfig() Config {
	return Config{
		Threads:        1,
		BlockSize:      64,
		Simplify:       SimplifyDatabase,
		SugarSelection: true,
		Verbosity:      0,
	}
}
