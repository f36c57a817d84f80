// Package poly implements the polynomial component (C4): an ordered list
// of (coefficient, term) pairs with a leading term and a "sugar" degree
// bound carried through arithmetic.
package poly

import (
	"errors"

	"f4gbc/internal/field"
	"f4gbc/internal/order"
	"f4gbc/internal/term"
)

// ErrZeroGenerator is returned when a caller-supplied generator reduces to
// the zero polynomial — an invalid-input error per the error-handling
// design, not normal control flow.
var ErrZeroGenerator = errors.New("poly: generator reduces to the zero polynomial")

// Monomial is a single (coefficient, term) pair of a polynomial.
type Monomial struct {
	Coeff uint64
	Term  *term.Term
}

// Polynomial is a finite ordered sequence of monomials, sorted strictly
// descending under the active ordering, with no zero coefficients and no
// duplicate terms. Sugar is an upper bound on the homogenized degree.
type Polynomial struct {
	terms []Monomial
	sugar uint32
}

// New builds a polynomial from unordered, possibly-duplicate monomials,
// combining duplicate terms and dropping zero coefficients, then sorting
// descending under ord. Sugar defaults to the resulting leading term's
// degree; callers that need a larger sugar (e.g. extraction at a selection
// degree) should use NewWithSugar.
func New(f *field.Field, ord order.Ordering, monos []Monomial) *Polynomial {
	p := NewWithSugar(f, ord, monos, 0)
	if len(p.terms) > 0 {
		p.sugar = p.terms[0].Term.Deg()
	}
	return p
}

// NewWithSugar is like New but pins the resulting sugar to at least
// minSugar (arithmetic on polynomials never lets sugar decrease).
func NewWithSugar(f *field.Field, ord order.Ordering, monos []Monomial, minSugar uint32) *Polynomial {
	combined := make(map[*term.Term]uint64, len(monos))
	order_ := make([]*term.Term, 0, len(monos))
	for _, m := range monos {
		if _, seen := combined[m.Term]; !seen {
			order_ = append(order_, m.Term)
		}
		combined[m.Term] = f.Add(combined[m.Term], m.Coeff)
	}
	out := make([]Monomial, 0, len(order_))
	for _, t := range order_ {
		if c := combined[t]; c != 0 {
			out = append(out, Monomial{Coeff: c, Term: t})
		}
	}
	sortDesc(ord, out)
	sugar := minSugar
	if len(out) > 0 && out[0].Term.Deg() > sugar {
		sugar = out[0].Term.Deg()
	}
	return &Polynomial{terms: out, sugar: sugar}
}

func sortDesc(ord order.Ordering, m []Monomial) {
	// Small polynomials dominate (matrix rows, not whole bases); a plain
	// insertion sort avoids the overhead of sort.Slice's reflection-driven
	// comparator for the common case and stays stable, which callers rely
	// on when two monomials tie under a degenerate ordering.
	for i := 1; i < len(m); i++ {
		for j := i; j > 0 && ord.Compare(m[j].Term, m[j-1].Term) > 0; j-- {
			m[j], m[j-1] = m[j-1], m[j]
		}
	}
}

// Terms returns the polynomial's monomials, leading term first. Callers
// must not mutate the returned slice.
func (p *Polynomial) Terms() []Monomial { return p.terms }

// Len returns the number of monomials.
func (p *Polynomial) Len() int { return len(p.terms) }

// IsZero reports whether the polynomial has no monomials.
func (p *Polynomial) IsZero() bool { return len(p.terms) == 0 }

// LT returns the leading term, or nil if the polynomial is zero.
func (p *Polynomial) LT() *term.Term {
	if len(p.terms) == 0 {
		return nil
	}
	return p.terms[0].Term
}

// LC returns the leading coefficient, or 0 if the polynomial is zero.
func (p *Polynomial) LC() uint64 {
	if len(p.terms) == 0 {
		return 0
	}
	return p.terms[0].Coeff
}

// Sugar returns the polynomial's sugar degree bound.
func (p *Polynomial) Sugar() uint32 { return p.sugar }

// Normalize scales the polynomial so its leading coefficient is 1 (monic).
// A no-op on the zero polynomial.
func (p *Polynomial) Normalize(f *field.Field) error {
	if p.IsZero() {
		return nil
	}
	lc := p.terms[0].Coeff
	if lc == 1 {
		return nil
	}
	inv, err := f.Inv(lc)
	if err != nil {
		return err
	}
	for i := range p.terms {
		p.terms[i].Coeff = f.Mul(p.terms[i].Coeff, inv)
	}
	return nil
}

// MulTerm returns t*factor*p. Multiplying every monomial by the same term
// preserves relative order under any monomial ordering, so the result
// needs no re-sort. Sugar of t*p is deg(t) + sugar(p), per §3.
func (p *Polynomial) MulTerm(f *field.Field, m *term.Monoid, t *term.Term, factor uint64) *Polynomial {
	out := make([]Monomial, len(p.terms))
	for i, mono := range p.terms {
		out[i] = Monomial{Coeff: f.Mul(mono.Coeff, factor), Term: m.Mul(t, mono.Term)}
	}
	return &Polynomial{terms: out, sugar: t.Deg() + p.sugar}
}

// LCMLeadingTerms returns lcm(LT(p), LT(q)) under monoid m.
func LCMLeadingTerms(m *term.Monoid, p, q *Polynomial) *term.Term {
	return m.LCM(p.LT(), q.LT())
}
