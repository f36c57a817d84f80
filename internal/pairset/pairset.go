// Package pairset implements the critical-pair manager (C5): it maintains
// the set of critical pairs and applies the Buchberger/Gebauer-Möller
// criteria (B, M, F) whenever the basis changes.
package pairset

import (
	"f4gbc/internal/order"
	"f4gbc/internal/poly"
	"f4gbc/internal/term"
)

// Pair is a deferred S-polynomial computation: the indices of its two
// operands, their lcm, whether it is the "relatively prime" product case,
// and its sugar estimate.
type Pair struct {
	I, J   int
	LCM    *term.Term
	Marked bool
	Sugar  uint32
}

// Manager owns the basis and the live critical-pair set. It is used only
// from the single-threaded driver goroutine (§5); the reduction engine
// only reads Manager.Basis()/InBasis() during its own parallel phases,
// after the driver has handed off a fixed batch.
type Manager struct {
	monoid *term.Monoid
	ord    order.Ordering

	basis    []*poly.Polynomial
	inBasis  *BasisFlags
	pairs    []Pair
	useSugar bool
}

// New creates an empty pair manager over the given monoid and ordering,
// selecting the sugar heuristic for pair-batch ordering.
func New(m *term.Monoid, ord order.Ordering) *Manager {
	return &Manager{monoid: m, ord: ord, inBasis: NewBasisFlags(), useSugar: true}
}

// NewWithSelection is like New but lets the caller disable the sugar
// heuristic (SugarSelection: false in the driver configuration), falling
// back to the lcm's plain total degree as the pair-batch selection key.
func NewWithSelection(m *term.Monoid, ord order.Ordering, useSugar bool) *Manager {
	return &Manager{monoid: m, ord: ord, inBasis: NewBasisFlags(), useSugar: useSugar}
}

// Basis returns the full basis slot list (including cleared slots).
func (mgr *Manager) Basis() []*poly.Polynomial { return mgr.basis }

// InBasis reports whether slot i currently carries the in-basis flag.
func (mgr *Manager) InBasis(i int) bool { return mgr.inBasis.Get(i) }

// Empty reports whether no critical pairs remain.
func (mgr *Manager) Empty() bool { return len(mgr.pairs) == 0 }

// Len returns the number of live critical pairs.
func (mgr *Manager) Len() int { return len(mgr.pairs) }

func maxU32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

func (mgr *Manager) pairSugar(fi, fj *poly.Polynomial, lcm *term.Term) uint32 {
	if !mgr.useSugar {
		return lcm.Deg()
	}
	si := fi.Sugar() - fi.LT().Deg()
	sj := fj.Sugar() - fj.LT().Deg()
	return maxU32(si, sj) + lcm.Deg()
}

// Update folds newly discovered polynomials into the basis and the pair
// set, applying Criterion B (prune stale pairs), Criterion M (prune
// dominated new candidates), the identical-lcm bucketing pass, and
// Criterion F (drop product-case survivors) — §4.1 of the specification.
func (mgr *Manager) Update(newPolys []*poly.Polynomial) {
	for _, h := range newPolys {
		mgr.updateOne(h)
	}
}

func (mgr *Manager) updateOne(h *poly.Polynomial) {
	m := mgr.monoid
	t := len(mgr.basis)

	// Criterion B: prune existing pairs made obsolete by h.
	kept := mgr.pairs[:0]
	for _, pr := range mgr.pairs {
		fi, fj := mgr.basis[pr.I], mgr.basis[pr.J]
		if !m.Divides(h.LT(), pr.LCM) || m.LCM(h.LT(), fi.LT()) == pr.LCM || m.LCM(h.LT(), fj.LT()) == pr.LCM {
			kept = append(kept, pr)
		}
	}
	mgr.pairs = kept

	// Basis insertion: h joins the active basis unless some already
	// in-basis element's leading term divides LT(h). This must be decided
	// before any pair is generated for h: when h is excluded, it is
	// recorded in the basis slot list but takes no part in this update's
	// Criterion M / bucketing / Criterion F pipeline, matching the
	// original source's block nesting of that entire pipeline inside
	// insertIntoG.
	insertIntoG := true
	for i := 0; i < t; i++ {
		if mgr.inBasis.Get(i) && m.Divides(mgr.basis[i].LT(), h.LT()) {
			insertIntoG = false
			break
		}
	}

	if insertIntoG {
		// D1: candidate operand indices, snapshotted before any flag
		// mutation below so the M-criterion pass and the pair generation
		// both see the basis membership as it stood before h arrived.
		d1 := make([]bool, t)
		for i := 0; i < t; i++ {
			d1[i] = mgr.inBasis.Get(i)
		}

		// Criterion M: cancel (i,t) when a (j,t) exists whose lcm is a
		// proper divisor of (i,t)'s lcm.
		for i := 0; i < t; i++ {
			if !d1[i] {
				continue
			}
			a := m.LCM(h.LT(), mgr.basis[i].LT())
			for j := 0; j < t; j++ {
				if i == j || !d1[j] {
					continue
				}
				b := m.LCM(h.LT(), mgr.basis[j].LT())
				if a != b && m.Divides(b, a) {
					d1[i] = false
					break
				}
			}
		}

		// Bucket surviving candidates by identical lcm, keeping one
		// representative per bucket (preferring an unmarked one).
		type bucketEntry struct {
			i      int
			lcm    *term.Term
			marked bool
			sugar  uint32
		}
		buckets := make(map[*term.Term]bucketEntry)
		order_ := make([]*term.Term, 0, t)
		for i := 0; i < t; i++ {
			if !d1[i] {
				continue
			}
			fi := mgr.basis[i]
			lcm := m.LCM(h.LT(), fi.LT())
			marked := lcm == m.Mul(fi.LT(), h.LT())
			entry := bucketEntry{i: i, lcm: lcm, marked: marked, sugar: mgr.pairSugar(fi, h, lcm)}
			if existing, ok := buckets[lcm]; ok {
				if existing.marked && !marked {
					buckets[lcm] = entry
				}
			} else {
				buckets[lcm] = entry
				order_ = append(order_, lcm)
			}
		}

		// Criterion F: drop the marked (product-case) survivors, add the
		// rest.
		for _, lcm := range order_ {
			e := buckets[lcm]
			if e.marked {
				continue
			}
			mgr.pairs = append(mgr.pairs, Pair{I: e.i, J: t, LCM: e.lcm, Marked: e.marked, Sugar: e.sugar})
		}
	}

	mgr.basis = append(mgr.basis, h)
	mgr.inBasis.Push(insertIntoG)

	if insertIntoG {
		for j := 0; j < t; j++ {
			if mgr.inBasis.Get(j) && m.Divides(h.LT(), mgr.basis[j].LT()) {
				mgr.inBasis.Set(j, false)
			}
		}
	}
}

// SelectBatch returns every pair whose sugar equals the minimum currently
// in the set, removing them from the live set. Iteration order is stable
// and deterministic: pairs are ordered by (sugar, i, j).
func (mgr *Manager) SelectBatch() []Pair {
	if len(mgr.pairs) == 0 {
		return nil
	}
	minSugar := mgr.pairs[0].Sugar
	for _, p := range mgr.pairs[1:] {
		if p.Sugar < minSugar {
			minSugar = p.Sugar
		}
	}
	var batch []Pair
	remaining := mgr.pairs[:0]
	for _, p := range mgr.pairs {
		if p.Sugar == minSugar {
			batch = append(batch, p)
		} else {
			remaining = append(remaining, p)
		}
	}
	mgr.pairs = remaining
	sortPairs(batch)
	return batch
}

func sortPairs(p []Pair) {
	for i := 1; i < len(p); i++ {
		for j := i; j > 0 && less(p[j], p[j-1]); j-- {
			p[j], p[j-1] = p[j-1], p[j]
		}
	}
}

func less(a, b Pair) bool {
	if a.I != b.I {
		return a.I < b.I
	}
	return a.J < b.J
}
