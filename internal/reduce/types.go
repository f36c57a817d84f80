// Package reduce implements the F4 reduction engine (C7): symbolic
// preprocessing, an operation scheduler, a parallel dense triangular
// solve, a parallel Gaussian reduction, and extraction of new basis
// members. It is the core of the specification: given a batch of critical
// pairs, it returns the new polynomials their S-polynomials reduce to.
package reduce

import "f4gbc/internal/term"

// Options configures the reduction engine's resource usage. It mirrors the
// subset of the driver's public Config relevant to a single Reduce call.
type Options struct {
	Threads   int
	BlockSize int
}

// rowDef describes one matrix row before its contents are materialized:
// row = (target / LT(basis[Basis])) * basis[Basis].
type rowDef struct {
	Basis   int
	Target  *term.Term
	IsPivot bool
}

// sparseEntry is a single non-pivot-column contribution to a row.
type sparseEntry struct {
	Coeff uint64
	Term  *term.Term
}

// rowContribution records that some row has a nonzero coefficient in a
// particular pivot column, used while building the elimination schedule.
type rowContribution struct {
	Row   int
	Coeff uint64
}

// Operation is the triple (target_row, operator_row, factor) meaning
// row[target] -= factor * row[operator], per §3.
type Operation struct {
	Target int
	Oper   int
	Factor uint64
}

// Matrix is the fully preprocessed reduction matrix for one degree step,
// ready for the dense triangular solve and final Gaussian elimination.
type Matrix struct {
	Rows      []rowDef
	Upper     int // 2 * (number of pairs in the selected batch)
	rightSide [][]sparseEntry
	Columns   []*term.Term // non-pivot columns, sorted descending
	colIndex  map[*term.Term]int
	Levels    [][]Operation
	Dense     [][]uint64 // len(Rows) x len(Columns)
}
