package pairset

// BasisFlags is a growable bit vector recording, per basis slot, whether
// the slot is part of the currently reduced basis. Adapted from the
// teacher's core.BitVector: unlike that type, this one only ever grows by
// one bit at a time (one flag per newly appended basis polynomial) and is
// mutated exclusively by the single-threaded driver/pair manager (§5), so
// it carries no internal locking.
type BasisFlags struct {
	words []uint64
	size  uint64
}

// NewBasisFlags creates an empty flag vector.
func NewBasisFlags() *BasisFlags {
	return &BasisFlags{}
}

// Push appends a new flag with the given initial value.
func (b *BasisFlags) Push(value bool) {
	pos := b.size
	if pos%64 == 0 {
		b.words = append(b.words, 0)
	}
	if value {
		b.words[pos/64] |= 1 << (pos % 64)
	}
	b.size++
}

// Get returns the flag at pos.
func (b *BasisFlags) Get(pos int) bool {
	p := uint64(pos)
	return b.words[p/64]&(1<<(p%64)) != 0
}

// Set sets the flag at pos to value.
func (b *BasisFlags) Set(pos int, value bool) {
	p := uint64(pos)
	if value {
		b.words[p/64] |= 1 << (p % 64)
	} else {
		b.words[p/64] &^= 1 << (p % 64)
	}
}

// Len returns the number of flags stored.
func (b *BasisFlags) Len() int { return int(b.size) }
