package reduce

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// parallelFor splits [0, n) into up to `workers` contiguous chunks and runs
// fn(lo, hi) for each chunk concurrently, blocking until every chunk
// completes (a fork-join barrier). A panic inside any chunk is recovered
// and turned into an error so a worker fault surfaces through Wait() on the
// driver goroutine rather than crashing the process, per the propagation
// policy: parallel worker faults are collected at the barrier and
// re-raised on the caller.
func parallelFor(workers, n int, fn func(lo, hi int) error) error {
	if n == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("reduce: worker panic on range [%d,%d): %v", lo, hi, r)
				}
			}()
			return fn(lo, hi)
		})
	}
	return g.Wait()
}

// parallelStride runs fn(j) concurrently for j in the given stride sequence
// {start, start+step, start+2*step, ...} < limit, partitioning the sequence
// across workers. Used by the Gaussian strided update (§4.3.4), where the
// unit of parallel work is a stride index rather than a contiguous range.
func parallelStride(workers, start, step, limit int, fn func(j int) error) error {
	var idxs []int
	for j := start; j < limit; j += step {
		idxs = append(idxs, j)
	}
	return parallelFor(workers, len(idxs), func(lo, hi int) error {
		for _, j := range idxs[lo:hi] {
			if err := fn(j); err != nil {
				return err
			}
		}
		return nil
	})
}
