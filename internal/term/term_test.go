package term

import "testing"

func TestMakeInterns(t *testing.T) {
	m := NewMonoid(3)
	a := m.Make([]uint16{1, 0, 2})
	b := m.Make([]uint16{1, 0, 2})
	if a != b {
		t.Fatalf("expected identical exponent vectors to intern to the same pointer")
	}
	if a.Deg() != 3 {
		t.Fatalf("expected degree 3, got %d", a.Deg())
	}
}

func TestIdentity(t *testing.T) {
	m := NewMonoid(2)
	id := m.Identity()
	if id.Deg() != 0 {
		t.Fatalf("expected identity degree 0, got %d", id.Deg())
	}
	x := m.Make([]uint16{1, 0})
	if m.Mul(id, x) != x {
		t.Fatalf("identity should be a no-op under Mul")
	}
}

func TestMulDivRoundTrip(t *testing.T) {
	m := NewMonoid(2)
	x := m.Make([]uint16{1, 0})
	y := m.Make([]uint16{0, 1})
	xy := m.Mul(x, y)
	q, err := m.Div(x, xy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != y {
		t.Fatalf("expected xy/x == y")
	}
}

func TestDivNotDivisible(t *testing.T) {
	m := NewMonoid(1)
	x2 := m.Make([]uint16{2})
	x1 := m.Make([]uint16{1})
	if _, err := m.Div(x2, x1); err != ErrNotDivisible {
		t.Fatalf("expected ErrNotDivisible, got %v", err)
	}
}

func TestDivides(t *testing.T) {
	m := NewMonoid(2)
	x := m.Make([]uint16{1, 0})
	xy := m.Make([]uint16{1, 1})
	if !m.Divides(x, xy) {
		t.Fatalf("expected x | xy")
	}
	if m.Divides(xy, x) {
		t.Fatalf("expected xy does not divide x")
	}
}

func TestLCM(t *testing.T) {
	m := NewMonoid(2)
	a := m.Make([]uint16{2, 1})
	b := m.Make([]uint16{1, 3})
	lcm := m.LCM(a, b)
	want := m.Make([]uint16{2, 3})
	if lcm != want {
		t.Fatalf("expected lcm exponents {2,3}")
	}
}

func TestMakeOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on wrong-length exponent vector")
		}
	}()
	m := NewMonoid(2)
	m.Make([]uint16{1, 0, 0})
}
