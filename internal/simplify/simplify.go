// Package simplify implements the simplify database (C6): a memoization
// layer mapping (basis index, multiplier term) to a reduced row
// representative, shared across degree steps to avoid re-reducing the same
// product repeatedly.
package simplify

import (
	"sync"

	"f4gbc/internal/order"
	"f4gbc/internal/poly"
	"f4gbc/internal/term"
)

// Entry is the result of a Search: the best divisor term found and its
// stored representative polynomial.
type Entry struct {
	Term *term.Term
	Poly *poly.Polynomial
}

// DB is the simplify database contract. Two deployment modes exist,
// matching the two variants named in the source (§4.2): FlatDB (a flat map
// per basis index) and ConcurrentDB (the production, concurrency-safe
// path). Both share this interface so the reduction engine and driver do
// not need to know which is active.
type DB interface {
	Insert(i int, t *term.Term, p *poly.Polynomial)
	Search(i int, t *term.Term, basisPoly *poly.Polynomial) Entry
	Check(i int, t *term.Term) int
}

// FlatDB is the single-threaded flat-map variant: one map[term]poly per
// basis index, used when Config.Simplify is set to the in-memory mode.
type FlatDB struct {
	ord   order.Ordering
	monoid *term.Monoid
	tables []map[*term.Term]*poly.Polynomial
}

// NewFlatDB creates an empty flat simplify database.
func NewFlatDB(m *term.Monoid, ord order.Ordering) *FlatDB {
	return &FlatDB{ord: ord, monoid: m}
}

func (db *FlatDB) ensure(i int) map[*term.Term]*poly.Polynomial {
	for len(db.tables) <= i {
		db.tables = append(db.tables, nil)
	}
	if db.tables[i] == nil {
		db.tables[i] = make(map[*term.Term]*poly.Polynomial)
	}
	return db.tables[i]
}

// Insert records (i, t) -> p, replacing any prior value for the same key.
func (db *FlatDB) Insert(i int, t *term.Term, p *poly.Polynomial) {
	db.ensure(i)[t] = p
}

// Search returns the pair (t', p') with t' the largest divisor of t stored
// for basis index i, or (identity, basisPoly) if no divisor is stored.
func (db *FlatDB) Search(i int, t *term.Term, basisPoly *poly.Polynomial) Entry {
	if i >= len(db.tables) || db.tables[i] == nil {
		return Entry{Term: db.monoid.Identity(), Poly: basisPoly}
	}
	best := db.monoid.Identity()
	var bestPoly *poly.Polynomial
	for cand, p := range db.tables[i] {
		if !db.monoid.Divides(cand, t) {
			continue
		}
		if bestPoly == nil || db.ord.Compare(cand, best) > 0 {
			best, bestPoly = cand, p
		}
	}
	if bestPoly == nil {
		return Entry{Term: db.monoid.Identity(), Poly: basisPoly}
	}
	return Entry{Term: best, Poly: bestPoly}
}

// Check is a non-mutating probe returning the degree of the best divisor
// found (0 if none), used for heuristic scheduling decisions.
func (db *FlatDB) Check(i int, t *term.Term) int {
	if i >= len(db.tables) || db.tables[i] == nil {
		return 0
	}
	best := -1
	for cand := range db.tables[i] {
		if db.monoid.Divides(cand, t) {
			d := int(cand.Deg())
			if d > best {
				best = d
			}
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

// ConcurrentDB is the production simplify database: a sync.Map of
// sync.Map (basis index -> term -> representative), the Go analogue of the
// source's tbb::concurrent_unordered_map<size_t,
// tbb::concurrent_unordered_map<Term, Polynomial>>. Safe for concurrent
// Insert/Search/Check during symbolic preprocessing's parallel row
// materialization; read-mostly after the fork-join barrier.
type ConcurrentDB struct {
	ord    order.Ordering
	monoid *term.Monoid
	tables sync.Map // int -> *sync.Map (term -> *poly.Polynomial)
}

// NewConcurrentDB creates an empty concurrency-safe simplify database.
func NewConcurrentDB(m *term.Monoid, ord order.Ordering) *ConcurrentDB {
	return &ConcurrentDB{ord: ord, monoid: m}
}

func (db *ConcurrentDB) tableFor(i int) *sync.Map {
	v, _ := db.tables.LoadOrStore(i, &sync.Map{})
	return v.(*sync.Map)
}

// Insert records (i, t) -> p. Idempotent: later inserts for the same key
// replace the value.
func (db *ConcurrentDB) Insert(i int, t *term.Term, p *poly.Polynomial) {
	db.tableFor(i).Store(t, p)
}

// Search returns the pair (t', p') with t' the largest divisor of t stored
// for basis index i under the active ordering, or (identity, basisPoly).
func (db *ConcurrentDB) Search(i int, t *term.Term, basisPoly *poly.Polynomial) Entry {
	v, ok := db.tables.Load(i)
	if !ok {
		return Entry{Term: db.monoid.Identity(), Poly: basisPoly}
	}
	tbl := v.(*sync.Map)
	best := db.monoid.Identity()
	var bestPoly *poly.Polynomial
	tbl.Range(func(key, value any) bool {
		cand := key.(*term.Term)
		if !db.monoid.Divides(cand, t) {
			return true
		}
		if bestPoly == nil || db.ord.Compare(cand, best) > 0 {
			best, bestPoly = cand, value.(*poly.Polynomial)
		}
		return true
	})
	if bestPoly == nil {
		return Entry{Term: db.monoid.Identity(), Poly: basisPoly}
	}
	return Entry{Term: best, Poly: bestPoly}
}

// Check is a non-mutating probe returning the degree of the best divisor
// found (0 if none).
func (db *ConcurrentDB) Check(i int, t *term.Term) int {
	v, ok := db.tables.Load(i)
	if !ok {
		return 0
	}
	tbl := v.(*sync.Map)
	best := -1
	tbl.Range(func(key, _ any) bool {
		cand := key.(*term.Term)
		if db.monoid.Divides(cand, t) {
			if d := int(cand.Deg()); d > best {
				best = d
			}
		}
		return true
	})
	if best < 0 {
		return 0
	}
	return best
}
