// SPDX-License-Identifier: MIT

package basis

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lfa/features"
)

// ProjectBatch projects every point of xs through b, splitting the work
// into at most workers contiguous chunks (workers <= 0 ⇒ GOMAXPROCS).
// Results are in input order. The first error encountered is returned and
// the partial results are discarded.
//
// Bases are immutable, so concurrent Project calls need no synchronisation.
func ProjectBatch(b Basis, xs [][]float64, workers int) ([]features.Vector, error) {
	if b == nil {
		return nil, configErrorf("ProjectBatch", "nil basis")
	}
	out := make([]features.Vector, len(xs))
	if len(xs) == 0 {
		return out, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(xs) {
		workers = len(xs)
	}
	chunk := (len(xs) + workers - 1) / workers

	var g errgroup.Group
	for lo := 0; lo < len(xs); lo += chunk {
		lo, hi := lo, min(lo+chunk, len(xs))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				f, err := b.Project(xs[i])
				if err != nil {
					return err
				}
				out[i] = f
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
