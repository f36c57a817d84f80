package reduce

import (
	"f4gbc/internal/field"
	"f4gbc/internal/order"
	"f4gbc/internal/pairset"
	"f4gbc/internal/poly"
	"f4gbc/internal/simplify"
	"f4gbc/internal/term"
)

// findReducer returns the smallest basis index k, among currently in-basis
// polynomials, whose leading term divides tt, or -1 if none divides it.
func findReducer(basis []*poly.Polynomial, inBasis func(int) bool, m *term.Monoid, tt *term.Term) int {
	for k, f := range basis {
		if inBasis(k) && m.Divides(f.LT(), tt) {
			return k
		}
	}
	return -1
}

// Preprocess performs symbolic preprocessing (§4.3.1): given a batch of
// critical pairs, it materializes the two seed rows per pair (the pivot row
// and the S-polynomial's other operand row), then closes the row set by
// pulling in a reducer row from the basis for every produced term that some
// in-basis leading term divides (terms with no such divisor become plain
// columns), consulting the simplify database to reuse an
// already-reduced representative wherever one covers the needed quotient.
//
// The closure loop is sequential (row discovery mutates the row list as it
// runs, mirroring how each newly appended row can itself introduce further
// columns); the per-row term multiplication is parallelized across workers
// once a row's monomial count passes BlockSize, since that step is embarrassingly
// parallel and dominates cost for wide polynomials.
func Preprocess(
	basis []*poly.Polynomial,
	inBasis func(int) bool,
	m *term.Monoid,
	ord order.Ordering,
	f *field.Field,
	sdb simplify.DB,
	batch []pairset.Pair,
	opts Options,
) (*Matrix, error) {
	rows := make([]rowDef, 0, 2*len(batch))
	pivots := make(map[*term.Term]int, 2*len(batch))
	for _, pr := range batch {
		lcm := pr.LCM
		pivots[lcm] = len(rows)
		rows = append(rows, rowDef{Basis: pr.I, Target: lcm, IsPivot: true})
		rows = append(rows, rowDef{Basis: pr.J, Target: lcm, IsPivot: false})
	}
	upper := len(rows)

	rightSide := make([][]sparseEntry, len(rows))
	termsUnordered := make(map[*term.Term]struct{})
	pivotOps := make(map[*term.Term][]rowContribution)

	for i := 0; i < len(rows); i++ {
		row := rows[i]
		basisPoly := basis[row.Basis]
		irTerm, err := m.Div(basisPoly.LT(), row.Target)
		if err != nil {
			return nil, err
		}

		multiplier, srcPoly := irTerm, basisPoly
		if sdb != nil {
			e := sdb.Search(row.Basis, irTerm, basisPoly)
			q, err := m.Div(e.Term, irTerm)
			if err == nil {
				multiplier, srcPoly = q, e.Poly
			}
		}

		monos := srcPoly.Terms()
		startJ := 0
		if row.IsPivot {
			startJ = 1
		}
		produced := make([]*term.Term, len(monos))
		coeffs := make([]uint64, len(monos))
		for j := 0; j < len(monos); j++ {
			coeffs[j] = monos[j].Coeff
		}
		if startJ < len(monos) {
			n := len(monos) - startJ
			work := func(lo, hi int) error {
				for j := startJ + lo; j < startJ+hi; j++ {
					produced[j] = m.Mul(multiplier, monos[j].Term)
				}
				return nil
			}
			if opts.BlockSize > 0 && n > opts.BlockSize && opts.Threads > 1 {
				if err := parallelFor(opts.Threads, n, work); err != nil {
					return nil, err
				}
			} else {
				if err := work(0, n); err != nil {
					return nil, err
				}
			}
		}

		for j := startJ; j < len(monos); j++ {
			tt := produced[j]
			coeff := coeffs[j]
			switch {
			case tt == row.Target:
				pivotOps[row.Target] = append(pivotOps[row.Target], rowContribution{Row: i, Coeff: coeff})
			default:
				if _, ok := pivots[tt]; ok {
					pivotOps[tt] = append(pivotOps[tt], rowContribution{Row: i, Coeff: coeff})
					continue
				}
				if _, seen := termsUnordered[tt]; seen {
					rightSide[i] = append(rightSide[i], sparseEntry{Coeff: coeff, Term: tt})
					continue
				}
				if k := findReducer(basis, inBasis, m, tt); k >= 0 {
					newIdx := len(rows)
					rows = append(rows, rowDef{Basis: k, Target: tt, IsPivot: true})
					rightSide = append(rightSide, nil)
					pivots[tt] = newIdx
					pivotOps[tt] = append(pivotOps[tt], rowContribution{Row: i, Coeff: coeff})
				} else {
					termsUnordered[tt] = struct{}{}
					rightSide[i] = append(rightSide[i], sparseEntry{Coeff: coeff, Term: tt})
				}
			}
		}

	}

	columns := make([]*term.Term, 0, len(termsUnordered))
	for t := range termsUnordered {
		columns = append(columns, t)
	}
	sortTermsDesc(ord, columns)
	colIndex := make(map[*term.Term]int, len(columns))
	for i, t := range columns {
		colIndex[t] = i
	}

	pivotTerms := make([]*term.Term, 0, len(pivotOps))
	for t := range pivotOps {
		pivotTerms = append(pivotTerms, t)
	}
	sortTermsAsc(ord, pivotTerms)

	levels := buildSchedule(rows, pivots, pivotOps, pivotTerms)

	mat := &Matrix{
		Rows:      rows,
		Upper:     upper,
		rightSide: rightSide,
		Columns:   columns,
		colIndex:  colIndex,
		Levels:    levels,
	}
	return mat, nil
}

func sortTermsDesc(ord order.Ordering, t []*term.Term) {
	for i := 1; i < len(t); i++ {
		for j := i; j > 0 && ord.Compare(t[j], t[j-1]) > 0; j-- {
			t[j], t[j-1] = t[j-1], t[j]
		}
	}
}

func sortTermsAsc(ord order.Ordering, t []*term.Term) {
	for i := 1; i < len(t); i++ {
		for j := i; j > 0 && ord.Compare(t[j], t[j-1]) < 0; j-- {
			t[j], t[j-1] = t[j-1], t[j]
		}
	}
}
