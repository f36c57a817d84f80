package order

import (
	"testing"

	"f4gbc/internal/term"
)

func TestDegRevLexDegreeDominates(t *testing.T) {
	m := term.NewMonoid(2)
	ord := NewDegRevLex(m)
	small := m.Make([]uint16{1, 0})
	big := m.Make([]uint16{0, 2})
	if !Less(ord, small, big) {
		t.Fatalf("expected lower total degree to order less regardless of which indeterminate carries it")
	}
}

func TestDegRevLexTieBreak(t *testing.T) {
	m := term.NewMonoid(2)
	ord := NewDegRevLex(m)
	// same degree: x^2 vs x*y. Reverse lex: compare last variable first;
	// x^2 has smaller y-exponent (0 < 1), so x^2 orders greater.
	x2 := m.Make([]uint16{2, 0})
	xy := m.Make([]uint16{1, 1})
	if !Greater(ord, x2, xy) {
		t.Fatalf("expected x^2 to order greater than xy under degrevlex")
	}
}

func TestDegRevLexReflexive(t *testing.T) {
	m := term.NewMonoid(3)
	ord := NewDegRevLex(m)
	a := m.Make([]uint16{1, 2, 3})
	if ord.Compare(a, a) != 0 {
		t.Fatalf("expected a term to compare equal to itself")
	}
}

func TestDegRevLexIdentityIsMinimum(t *testing.T) {
	m := term.NewMonoid(3)
	ord := NewDegRevLex(m)
	id := m.Identity()
	x := m.Make([]uint16{1, 0, 0})
	if !Less(ord, id, x) {
		t.Fatalf("expected identity to order strictly below any nontrivial term")
	}
}
