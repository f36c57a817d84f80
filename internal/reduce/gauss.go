package reduce

import "f4gbc/internal/field"

// gaussEliminate performs the final dense Gaussian elimination over the
// odd-indexed rows (§4.3.4): each pass normalizes one pivot row and then
// strides through the remaining rows, cancelling their entry in the pivot's
// column. The stride step is 2 because only odd rows (the "new" rows, one
// per pair) participate; even rows carry the already-reduced basis
// contributions consumed during triangular solve and are skipped here.
func gaussEliminate(mat *Matrix, f *field.Field, threads int) ([]bool, error) {
	empty := make([]bool, mat.Upper)
	ncols := len(mat.Columns)

	for i := 1; i < mat.Upper; i += 2 {
		row := mat.Dense[i]
		p := -1
		for c := 0; c < ncols; c++ {
			if row[c] != 0 {
				p = c
				break
			}
		}
		if p < 0 {
			empty[i] = true
			continue
		}
		if row[p] != 1 {
			inv, err := f.Inv(row[p])
			if err != nil {
				return nil, err
			}
			for c := p; c < ncols; c++ {
				row[c] = f.Mul(row[c], inv)
			}
		}

		pivotCol := p
		err := parallelStride(threads, 2, 2, mat.Upper, func(j int) error {
			k := (i + j) % mat.Upper
			other := mat.Dense[k]
			factor := other[pivotCol]
			if factor == 0 {
				return nil
			}
			for c := pivotCol; c < ncols; c++ {
				other[c] = f.MulSub(other[c], row[c], factor)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return empty, nil
}
