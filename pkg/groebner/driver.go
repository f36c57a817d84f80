package groebner

import (
	"sort"

	"f4gbc/internal/field"
	"f4gbc/internal/order"
	"f4gbc/internal/pairset"
	"f4gbc/internal/poly"
	"f4gbc/internal/reduce"
	"f4gbc/internal/simplify"
	"f4gbc/internal/term"
	"f4gbc/internal/util"
)

// Compute runs the degree-by-degree F4/Buchberger main loop (§4.4) over the
// given generators and returns a Gröbner basis of the ideal they generate,
// under the supplied ordering. The driver itself is strictly sequential
// (§5): it selects a minimal-sugar pair batch, hands it to the reduction
// engine, folds the resulting polynomials back into the pair manager, and
// repeats until no pairs remain. The driver does not insert the resulting
// polynomials into the simplify database; Reduce records each matrix
// step's pivot-row representatives there itself.
func Compute(generators []*poly.Polynomial, m *term.Monoid, ord order.Ordering, f *field.Field, cfg Config) ([]*poly.Polynomial, error) {
	for _, g := range generators {
		if g.IsZero() {
			return nil, poly.ErrZeroGenerator
		}
		if err := g.Normalize(f); err != nil {
			return nil, err
		}
	}

	// Order the generators by leading term, largest first, before seeding
	// the pair manager: Criterion B/M compare candidates by basis index,
	// so the initial insertion order participates in which pairs survive.
	sort.Slice(generators, func(i, j int) bool {
		return ord.Compare(generators[i].LT(), generators[j].LT()) > 0
	})

	var sdb simplify.DB
	switch cfg.Simplify {
	case SimplifyInMemory:
		sdb = simplify.NewFlatDB(m, ord)
	case SimplifyDatabase:
		sdb = simplify.NewConcurrentDB(m, ord)
	case SimplifyOff:
		sdb = nil
	}

	util.Log(cfg.Verbosity > 1, "groebner: %d generators, simplify mode %d, sugar selection %v", len(generators), cfg.Simplify, cfg.SugarSelection)

	mgr := pairset.NewWithSelection(m, ord, cfg.SugarSelection)
	log := util.NewStepLogger(cfg.Verbosity > 0)

	mgr.Update(generators)

	opts := reduce.Options{Threads: cfg.Threads, BlockSize: cfg.BlockSize}
	if opts.Threads < 1 {
		opts.Threads = 1
	}

	for !mgr.Empty() {
		batch := mgr.SelectBatch()
		log.Round(batch[0].Sugar, len(batch), len(mgr.Basis()))

		res, err := reduce.Reduce(mgr.Basis(), mgr.InBasis, m, ord, f, sdb, batch, opts)
		if err != nil {
			return nil, err
		}
		log.Matrix(res.Rows, res.Cols)

		for _, p := range res.Polynomials {
			if err := p.Normalize(f); err != nil {
				return nil, err
			}
		}
		log.Produced(len(res.Polynomials))

		mgr.Update(res.Polynomials)
	}

	basis := mgr.Basis()
	out := make([]*poly.Polynomial, 0, len(basis))
	for i, p := range basis {
		if mgr.InBasis(i) {
			out = append(out, p)
		}
	}
	log.Done(len(out))
	return out, nil
}
