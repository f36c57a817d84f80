package reduce

import (
	"f4gbc/internal/field"
	"f4gbc/internal/order"
	"f4gbc/internal/poly"
	"f4gbc/internal/simplify"
	"f4gbc/internal/term"
)

// materializeDense allocates and fills Matrix.Dense from the sparse
// right-side entries gathered during preprocessing (§5 item 2): each row is
// independent at this stage, so workers partition the row range with no
// synchronization needed.
func materializeDense(mat *Matrix, threads int) error {
	mat.Dense = make([][]uint64, len(mat.Rows))
	ncols := len(mat.Columns)
	return parallelFor(threads, len(mat.Rows), func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			row := make([]uint64, ncols)
			for _, e := range mat.rightSide[i] {
				if idx, ok := mat.colIndex[e.Term]; ok {
					row[idx] = e.Coeff
				}
			}
			mat.Dense[i] = row
		}
		return nil
	})
}

// populateSimplifyDB records every pivot row's fully-eliminated representative
// once the triangular solve has settled it, so a later degree step's
// preprocessing can reuse it in place of re-deriving t * f_i from scratch.
// The database is keyed by the multiplier term (row.Target / LT(basis[k])),
// matching how Preprocess looks representatives up. A pivot row's leading
// coefficient is always 1 (its source basis polynomial is normalized and
// its multiplier contributes no coefficient), so the implicit pivot-column
// entry is folded in alongside the row's settled plain-column entries.
func populateSimplifyDB(mat *Matrix, sdb simplify.DB, m *term.Monoid, basis []*poly.Polynomial, ord order.Ordering, f *field.Field) {
	for i, row := range mat.Rows {
		if !row.IsPivot {
			continue
		}
		multiplier, err := m.Div(basis[row.Basis].LT(), row.Target)
		if err != nil {
			continue
		}
		monos := []poly.Monomial{{Coeff: 1, Term: row.Target}}
		dense := mat.Dense[i]
		for c, coeff := range dense {
			if coeff != 0 {
				monos = append(monos, poly.Monomial{Coeff: coeff, Term: mat.Columns[c]})
			}
		}
		rep := poly.New(f, ord, monos)
		sdb.Insert(row.Basis, multiplier, rep)
	}
}

// solveTriangular applies the scheduled pivot-elimination operations
// (§4.3.3), level by level in ascending order. Within a level every
// operation targets a distinct row, so the level's operations run
// concurrently with no data races; the next level only starts once the
// current one's Wait() returns, which guarantees every operator row an
// operation depends on already reflects all of its own earlier updates.
func solveTriangular(mat *Matrix, f *field.Field, threads int) error {
	for _, level := range mat.Levels {
		ops := level
		if err := parallelFor(threads, len(ops), func(lo, hi int) error {
			for k := lo; k < hi; k++ {
				op := ops[k]
				target := mat.Dense[op.Target]
				oper := mat.Dense[op.Oper]
				for c := range target {
					target[c] = f.MulSub(target[c], oper[c], op.Factor)
				}
			}
			return nil
		}); err != nil {
			return err
		}
	}
	return nil
}
