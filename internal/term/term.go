// Package term implements the term monoid (C1): interned power products
// over a fixed number of indeterminates. Term equality and hashing are by
// pointer identity — two terms compare equal iff they are the same *Term,
// which the Monoid guarantees for any two power products with identical
// exponent vectors.
package term

import (
	"bytes"
	"encoding/binary"
	"errors"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// ErrIndeterminateOutOfRange is the value Make panics with when a caller
// supplies an exponent vector whose length does not match the monoid's
// dimension.
var ErrIndeterminateOutOfRange = errors.New("term: exponent vector references an indeterminate outside the monoid")

// ErrNotDivisible is returned by Div when a does not divide b exactly.
var ErrNotDivisible = errors.New("term: exact division requires divisibility")

// Term is an interned power product x1^e1 * x2^e2 * ... * xn^en.
type Term struct {
	powers []uint16
	degree uint32
	digest uint64
}

// Powers returns the term's exponent vector. Callers must not mutate it.
func (t *Term) Powers() []uint16 { return t.powers }

// Deg returns the total degree of the term.
func (t *Term) Deg() uint32 { return t.degree }

func degreeOf(powers []uint16) uint32 {
	var d uint32
	for _, p := range powers {
		d += uint32(p)
	}
	return d
}

func encode(powers []uint16) []byte {
	buf := make([]byte, len(powers)*2)
	for i, p := range powers {
		binary.LittleEndian.PutUint16(buf[i*2:], p)
	}
	return buf
}

// shard groups a mutex-guarded bucket of interned terms whose digest hashes
// to it. Sharding keeps insert-or-get contention low across the goroutines
// that materialize matrix rows in parallel during symbolic preprocessing.
type shard struct {
	mu      sync.Mutex
	entries map[uint64][]*Term // digest -> terms colliding on that digest
}

const shardCount = 256

// Monoid is a single append-only power-product monoid for one computation.
// All terms it interns outlive every rowset built against it (§5 resource
// policy); the Monoid itself is safe for concurrent Make/Mul/Div/LCM calls.
type Monoid struct {
	nvars    int
	identity *Term
	shards   [shardCount]shard
}

// NewMonoid creates a monoid over nvars indeterminates.
func NewMonoid(nvars int) *Monoid {
	m := &Monoid{nvars: nvars}
	for i := range m.shards {
		m.shards[i].entries = make(map[uint64][]*Term)
	}
	m.identity = m.Make(make([]uint16, nvars))
	return m
}

// NumVars returns the monoid's dimension.
func (m *Monoid) NumVars() int { return m.nvars }

// Identity returns the interned term with all exponents zero.
func (m *Monoid) Identity() *Term { return m.identity }

func (m *Monoid) shardFor(digest uint64) *shard {
	return &m.shards[digest%shardCount]
}

// Make interns a power product given its exponent vector, returning the
// unique *Term for that vector. Safe for concurrent use.
func (m *Monoid) Make(powers []uint16) *Term {
	if len(powers) != m.nvars {
		panic(ErrIndeterminateOutOfRange)
	}
	key := encode(powers)
	digest := xxhash.Sum64(key)
	sh := m.shardFor(digest)

	sh.mu.Lock()
	defer sh.mu.Unlock()
	for _, cand := range sh.entries[digest] {
		if bytes.Equal(encode(cand.powers), key) {
			return cand
		}
	}
	t := &Term{powers: append([]uint16(nil), powers...), degree: degreeOf(powers), digest: digest}
	sh.entries[digest] = append(sh.entries[digest], t)
	return t
}

// Mul returns the interned product a*b.
func (m *Monoid) Mul(a, b *Term) *Term {
	out := make([]uint16, m.nvars)
	for i := range out {
		out[i] = a.powers[i] + b.powers[i]
	}
	return m.Make(out)
}

// Divides reports whether a | b (every exponent of a is <= the
// corresponding exponent of b).
func (m *Monoid) Divides(a, b *Term) bool {
	for i := range a.powers {
		if a.powers[i] > b.powers[i] {
			return false
		}
	}
	return true
}

// Div returns the interned exact quotient b/a. It requires a | b.
func (m *Monoid) Div(a, b *Term) (*Term, error) {
	if !m.Divides(a, b) {
		return nil, ErrNotDivisible
	}
	out := make([]uint16, m.nvars)
	for i := range out {
		out[i] = b.powers[i] - a.powers[i]
	}
	return m.Make(out), nil
}

// LCM returns the interned least common multiple of a and b.
func (m *Monoid) LCM(a, b *Term) *Term {
	out := make([]uint16, m.nvars)
	for i := range out {
		if a.powers[i] > b.powers[i] {
			out[i] = a.powers[i]
		} else {
			out[i] = b.powers[i]
		}
	}
	return m.Make(out)
}

// Deg returns the total degree of a term (interface convenience matching
// the reduction engine's narrow Monoid contract).
func (m *Monoid) Deg(a *Term) uint32 { return a.degree }
