// SPDX-License-Identifier: MIT

package basis

import (
	"math"
	"sort"

	"github.com/katalvlaran/lfa/features"
)

const ctxFourier = "Fourier"

// Fourier is the dense cosine basis cos(π·c·u), where u is the input mapped
// onto [0,1]^dim by its bounds and c ranges over integer coefficient vectors
// in {0..Order}^dim (lexicographic, see enumerate.go).
type Fourier struct {
	order  int
	bounds []Bounds
	coeffs [][]int // len == Dim()
}

// NewFourier builds the full Fourier basis of the given order, or a random
// subset of it with WithRandomSubset.
//
// Errors:
//   - ErrInvalidConfiguration when order < 0, bounds are empty or malformed,
//     the grid exceeds MaxTerms, or the subset size is not in [1, grid].
func NewFourier(order int, bounds []Bounds, opts ...Option) (*Fourier, error) {
	o, err := gatherOptions(ctxFourier, opts, optRandomSubset)
	if err != nil {
		return nil, err
	}
	if order < 0 {
		return nil, configErrorf(ctxFourier, "order %d < 0", order)
	}
	if err = validateBounds(ctxFourier, bounds); err != nil {
		return nil, err
	}
	coeffs, err := fullGrid(ctxFourier, order, len(bounds))
	if err != nil {
		return nil, err
	}
	if o.used[optRandomSubset] {
		coeffs, err = randomSubset(coeffs, o)
		if err != nil {
			return nil, err
		}
	}

	return newFourier(order, bounds, coeffs)
}

// randomSubset keeps the zero vector plus k-1 coefficient vectors drawn
// without replacement, restored to lexicographic order.
func randomSubset(grid [][]int, o options) ([][]int, error) {
	k := o.subset
	if k < 1 || k > len(grid) {
		return nil, configErrorf(ctxFourier, "subset size %d outside [1,%d]", k, len(grid))
	}
	rng := rngOrDefault(o.subsetRNG)
	// grid[0] is the zero vector; draw the rest from grid[1:]
	perm := rng.Perm(len(grid) - 1)
	pick := make([]int, 0, k)
	pick = append(pick, 0)
	for _, p := range perm[:k-1] {
		pick = append(pick, p+1)
	}
	sort.Ints(pick)
	out := make([][]int, k)
	for i, p := range pick {
		out[i] = grid[p]
	}

	return out, nil
}

// newFourier is the shared tail of NewFourier and Build.
func newFourier(order int, bounds []Bounds, coeffs [][]int) (*Fourier, error) {
	if err := validateBounds(ctxFourier, bounds); err != nil {
		return nil, err
	}
	if err := validateTerms(ctxFourier, coeffs, len(bounds), order, false); err != nil {
		return nil, err
	}

	return &Fourier{order: order, bounds: copyBounds(bounds), coeffs: copyTerms(coeffs)}, nil
}

func (f *Fourier) sealed() {}

// InputDim returns len(bounds).
func (f *Fourier) InputDim() int { return len(f.bounds) }

// Dim returns the number of coefficient vectors.
func (f *Fourier) Dim() int { return len(f.coeffs) }

// IsSparse is false.
func (f *Fourier) IsSparse() bool { return false }

// Order returns the maximum coefficient.
func (f *Fourier) Order() int { return f.order }

// Project evaluates every cosine term at x. Inputs outside the bounds are
// accepted; the cosine simply continues periodically.
func (f *Fourier) Project(x []float64) (features.Vector, error) {
	if err := checkInput(ctxFourier, len(f.bounds), x); err != nil {
		return nil, err
	}
	u := make([]float64, len(x))
	for k, v := range x {
		u[k] = f.bounds[k].Unit(v)
	}
	out := make([]float64, len(f.coeffs))
	for i, c := range f.coeffs {
		var s float64
		for k, ck := range c {
			s += float64(ck) * u[k]
		}
		out[i] = math.Cos(math.Pi * s)
	}

	return features.WrapDense(out)
}

// Config returns the plain-data description; random subsets are recorded
// explicitly so Build needs no generator.
func (f *Fourier) Config() Config {
	return Config{
		Kind:     KindFourier,
		InputDim: len(f.bounds),
		Order:    f.order,
		Bounds:   copyBounds(f.bounds),
		Terms:    copyTerms(f.coeffs),
	}
}
