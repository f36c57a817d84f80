// Package field implements the prime-field arithmetic primitive (C3): add,
// multiply, invert, and the fused a - b*f reduction step the engine's inner
// loops run millions of times per degree step.
package field

import (
	"errors"
	"math/bits"
)

// ErrNotPrime is returned by New when the modulus fails a primality check.
var ErrNotPrime = errors.New("field: modulus is not prime")

// ErrZeroInverse is returned by Inv when asked to invert zero.
var ErrZeroInverse = errors.New("field: zero has no multiplicative inverse")

// Field implements arithmetic mod a machine-word prime p.
type Field struct {
	p uint64
}

// New constructs a prime field of characteristic p. It rejects composite or
// degenerate moduli — a field singularity per the error-handling design.
func New(p uint64) (*Field, error) {
	if p < 2 || !isPrime(p) {
		return nil, ErrNotPrime
	}
	return &Field{p: p}, nil
}

// Characteristic returns the field's prime modulus.
func (f *Field) Characteristic() uint64 { return f.p }

// Add returns (a+b) mod p. Inputs must already be reduced mod p.
func (f *Field) Add(a, b uint64) uint64 {
	s := a + b
	if s >= f.p {
		s -= f.p
	}
	return s
}

// Sub returns (a-b) mod p. Inputs must already be reduced mod p.
func (f *Field) Sub(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return f.p - (b - a)
}

// Mul returns (a*b) mod p using 128-bit intermediate multiplication.
func (f *Field) Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi%f.p, lo, f.p)
	return rem
}

// Inv returns the multiplicative inverse of a mod p via Fermat's little
// theorem (a^(p-2) mod p), which holds since p is prime.
func (f *Field) Inv(a uint64) (uint64, error) {
	a %= f.p
	if a == 0 {
		return 0, ErrZeroInverse
	}
	return f.pow(a, f.p-2), nil
}

func (f *Field) pow(base, exp uint64) uint64 {
	result := uint64(1)
	base %= f.p
	for exp > 0 {
		if exp&1 == 1 {
			result = f.Mul(result, base)
		}
		base = f.Mul(base, base)
		exp >>= 1
	}
	return result
}

// MulSub computes x - y*f mod p, the fused primitive every elimination
// operation in the reduction engine reduces to: row[target] -= factor *
// row[operator].
func (f *Field) MulSub(x, y, factor uint64) uint64 {
	return f.Sub(x, f.Mul(y, factor))
}

// Factor computes the coefficient by which a pivot must be scaled to
// eliminate the given nonzero entry: factor = entry (the pivot row's
// leading entry is normalized to 1, so no division is needed here).
func (f *Field) Factor(entry uint64) uint64 { return entry }

func isPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for _, p := range []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31} {
		if n == p {
			return true
		}
		if n%p == 0 {
			return false
		}
	}
	for i := uint64(37); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}
