package field

import "testing"

func TestNewRejectsComposite(t *testing.T) {
	if _, err := New(4); err != ErrNotPrime {
		t.Fatalf("expected ErrNotPrime for 4, got %v", err)
	}
}

func TestNewAcceptsPrime(t *testing.T) {
	f, err := New(32003)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Characteristic() != 32003 {
		t.Fatalf("expected characteristic 32003")
	}
}

func TestArithmeticModP(t *testing.T) {
	f, _ := New(7)
	if got := f.Add(5, 4); got != 2 {
		t.Fatalf("5+4 mod 7 = %d, want 2", got)
	}
	if got := f.Sub(2, 5); got != 4 {
		t.Fatalf("2-5 mod 7 = %d, want 4", got)
	}
	if got := f.Mul(3, 5); got != 1 {
		t.Fatalf("3*5 mod 7 = %d, want 1", got)
	}
}

func TestMulLargePrime(t *testing.T) {
	f, _ := New(18446744073709551557) // largest 64-bit prime
	a, b := uint64(18446744073709551000), uint64(18446744073709551500)
	got := f.Mul(a, b)
	if got >= f.Characteristic() {
		t.Fatalf("result %d not reduced mod p", got)
	}
}

func TestInv(t *testing.T) {
	f, _ := New(32003)
	for _, a := range []uint64{1, 2, 3, 32002} {
		inv, err := f.Inv(a)
		if err != nil {
			t.Fatalf("unexpected error inverting %d: %v", a, err)
		}
		if f.Mul(a, inv) != 1 {
			t.Fatalf("a * inv(a) != 1 for a=%d", a)
		}
	}
}

func TestInvZero(t *testing.T) {
	f, _ := New(32003)
	if _, err := f.Inv(0); err != ErrZeroInverse {
		t.Fatalf("expected ErrZeroInverse, got %v", err)
	}
}

func TestMulSub(t *testing.T) {
	f, _ := New(7)
	// x - y*factor mod p
	got := f.MulSub(5, 3, 2) // 5 - 6 = -1 mod 7 = 6
	if got != 6 {
		t.Fatalf("MulSub(5,3,2) = %d, want 6", got)
	}
}
