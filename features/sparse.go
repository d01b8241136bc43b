// SPDX-License-Identifier: MIT

// Package features - Sparse representation.
//
// Purpose:
//   - Store only active positions: unique indices in [0, dim) with an
//     optional value each (nil values ⇒ binary activations equal to 1).
//   - Keep Dot/AddScaledTo O(active) so tile-coded projections never pay for
//     the full table.
//
// Invariants (checked at construction, never clipped):
//   - dim > 0.
//   - 0 <= idx[k] < dim for every k, indices pairwise distinct.
//   - val == nil or len(val) == len(idx), all values finite.

package features

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/blas/blas64"
)

const (
	ctxSparseDot = "Sparse.Dot"
	ctxSparseAdd = "Sparse.AddScaledTo"
	ctxSparseNew = "NewSparse"
)

// smallSparse bounds the quadratic duplicate scan; larger sets sort a copy.
const smallSparse = 32

// Sparse is a set of active indices with optional activations.
type Sparse struct {
	dim int       // declared dimension
	idx []int     // active indices, unique, stored order preserved
	val []float64 // nil ⇒ every active activation is 1
}

// NewSparse builds a sparse vector with explicit activations.
// values may be nil for binary activations; otherwise len(values) must equal
// len(indices). Inputs are copied.
//
// Errors:
//   - ErrInvalidDimension when dim <= 0.
//   - *IndexError wrapping ErrInvalidIndex for an index outside [0, dim).
//   - *IndexError wrapping ErrDuplicateIndex for a repeated index.
//   - *DimensionError when len(values) != len(indices).
//   - ErrNaNInf for a non-finite value.
func NewSparse(dim int, indices []int, values []float64) (*Sparse, error) {
	if err := validateSparse(dim, indices, values); err != nil {
		return nil, err
	}
	idx := make([]int, len(indices))
	copy(idx, indices)
	var val []float64
	if values != nil {
		val = make([]float64, len(values))
		copy(val, values)
	}

	return &Sparse{dim: dim, idx: idx, val: val}, nil
}

// NewBinarySparse builds a sparse vector whose active activations are all 1.
func NewBinarySparse(dim int, indices []int) (*Sparse, error) {
	return NewSparse(dim, indices, nil)
}

// WrapBinarySparse adopts indices without copying after validating them.
// The caller must not mutate indices afterwards.
func WrapBinarySparse(dim int, indices []int) (*Sparse, error) {
	if err := validateSparse(dim, indices, nil); err != nil {
		return nil, err
	}

	return &Sparse{dim: dim, idx: indices}, nil
}

// validateSparse is the single source of truth for sparse invariants.
func validateSparse(dim int, indices []int, values []float64) error {
	if dim <= 0 {
		return ErrInvalidDimension
	}
	if values != nil && len(values) != len(indices) {
		return MismatchError(ctxSparseNew, len(indices), len(values))
	}
	for _, i := range indices {
		if i < 0 || i >= dim {
			return &IndexError{Index: i, Dim: dim, Err: ErrInvalidIndex}
		}
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
	}

	return checkUnique(dim, indices)
}

// checkUnique rejects repeated indices.
// Complexity: O(k²) for k <= smallSparse, O(k log k) otherwise.
func checkUnique(dim int, indices []int) error {
	k := len(indices)
	if k <= smallSparse {
		for a := 0; a < k; a++ {
			for b := a + 1; b < k; b++ {
				if indices[a] == indices[b] {
					return &IndexError{Index: indices[a], Dim: dim, Err: ErrDuplicateIndex}
				}
			}
		}
		return nil
	}
	sorted := make([]int, k)
	copy(sorted, indices)
	sort.Ints(sorted)
	for a := 1; a < k; a++ {
		if sorted[a] == sorted[a-1] {
			return &IndexError{Index: sorted[a], Dim: dim, Err: ErrDuplicateIndex}
		}
	}

	return nil
}

// Dim returns the declared dimension.
func (s *Sparse) Dim() int { return s.dim }

// IsSparse is always true.
func (s *Sparse) IsSparse() bool { return true }

// NNZ returns the number of active indices.
func (s *Sparse) NNZ() int { return len(s.idx) }

// IsBinary reports whether every active activation is exactly 1 by
// construction (no explicit values stored).
func (s *Sparse) IsBinary() bool { return s.val == nil }

// Indices returns a copy of the active indices in stored order.
func (s *Sparse) Indices() []int {
	out := make([]int, len(s.idx))
	copy(out, s.idx)

	return out
}

// value returns the activation of the k-th active entry.
func (s *Sparse) value(k int) float64 {
	if s.val == nil {
		return 1
	}

	return s.val[k]
}

// Dot sums col over active indices, weighted by their activations.
// Complexity: O(active).
func (s *Sparse) Dot(col blas64.Vector) (float64, error) {
	if err := checkColumn(ctxSparseDot, s.dim, col); err != nil {
		return 0, err
	}
	var (
		sum float64
		inc = col.Inc
		d   = col.Data
	)
	if s.val == nil {
		for _, i := range s.idx {
			sum += d[i*inc]
		}
		return sum, nil
	}
	for k, i := range s.idx {
		sum += s.val[k] * d[i*inc]
	}

	return sum, nil
}

// AddScaledTo performs col[i] += alpha·activation[i] on active indices only.
// Complexity: O(active).
func (s *Sparse) AddScaledTo(col blas64.Vector, alpha float64) error {
	if err := checkColumn(ctxSparseAdd, s.dim, col); err != nil {
		return err
	}
	if alpha == 0 {
		return nil
	}
	inc, d := col.Inc, col.Data
	if s.val == nil {
		for _, i := range s.idx {
			d[i*inc] += alpha
		}
		return nil
	}
	for k, i := range s.idx {
		d[i*inc] += alpha * s.val[k]
	}

	return nil
}

// Each visits active positions in stored order.
func (s *Sparse) Each(fn func(i int, v float64)) {
	for k, i := range s.idx {
		fn(i, s.value(k))
	}
}

// Expanded materialises a dense copy. Diagnostics only.
// Complexity: O(dim).
func (s *Sparse) Expanded() []float64 {
	out := make([]float64, s.dim)
	for k, i := range s.idx {
		out[i] = s.value(k)
	}

	return out
}
