package reduce

import (
	"f4gbc/internal/field"
	"f4gbc/internal/order"
	"f4gbc/internal/pairset"
	"f4gbc/internal/poly"
	"f4gbc/internal/simplify"
	"f4gbc/internal/term"
)

// Reduce carries out one full F4 matrix step for a batch of critical pairs
// sharing the same selection sugar (§4.3): symbolic preprocessing, dense
// row materialization, the triangular solve against known pivots, final
// Gaussian elimination, and extraction of the surviving new polynomials.
func Reduce(
	basis []*poly.Polynomial,
	inBasis func(int) bool,
	m *term.Monoid,
	ord order.Ordering,
	f *field.Field,
	sdb simplify.DB,
	batch []pairset.Pair,
	opts Options,
) (*Result, error) {
	if len(batch) == 0 {
		return &Result{}, nil
	}
	threads := opts.Threads
	if threads < 1 {
		threads = 1
	}

	mat, err := Preprocess(basis, inBasis, m, ord, f, sdb, batch, opts)
	if err != nil {
		return nil, err
	}
	if err := materializeDense(mat, threads); err != nil {
		return nil, err
	}
	if err := solveTriangular(mat, f, threads); err != nil {
		return nil, err
	}
	if sdb != nil {
		populateSimplifyDB(mat, sdb, m, basis, ord, f)
	}
	if _, err := gaussEliminate(mat, f, threads); err != nil {
		return nil, err
	}

	sugar := batch[0].Sugar
	polys := extractPolynomials(mat, f, ord, sugar)
	return &Result{Polynomials: polys, Rows: len(mat.Rows), Cols: len(mat.Columns)}, nil
}

// Result carries a reduction round's output plus the matrix shape, so
// callers can report progress without the engine depending on any
// particular logging facility.
type Result struct {
	Polynomials []*poly.Polynomial
	Rows        int
	Cols        int
}
