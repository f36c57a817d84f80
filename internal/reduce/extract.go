package reduce

import (
	"f4gbc/internal/field"
	"f4gbc/internal/order"
	"f4gbc/internal/poly"
)

// extractPolynomials builds the new basis candidates from the odd rows left
// standing after Gaussian elimination (§4.3.5). A row that reduced to zero
// contributes nothing; sugar is carried at the batch's selection degree
// since every row in a batch shares the same critical-pair sugar value by
// construction of SelectBatch.
func extractPolynomials(mat *Matrix, f *field.Field, ord order.Ordering, sugar uint32) []*poly.Polynomial {
	var out []*poly.Polynomial
	for i := 1; i < mat.Upper; i += 2 {
		row := mat.Dense[i]
		monos := make([]poly.Monomial, 0, len(mat.Columns))
		for c, coeff := range row {
			if coeff != 0 {
				monos = append(monos, poly.Monomial{Coeff: coeff, Term: mat.Columns[c]})
			}
		}
		if len(monos) == 0 {
			continue
		}
		p := poly.NewWithSugar(f, ord, monos, sugar)
		if !p.IsZero() {
			out = append(out, p)
		}
	}
	return out
}
