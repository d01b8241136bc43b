// SPDX-License-Identifier: MIT

// Package features - Dense representation.
//
// Purpose:
//   - Hold every activation 0..N-1 in one contiguous slice.
//   - Delegate Dot/AddScaledTo to gonum blas64 so strided weight columns are
//     handled by the same kernels gonum's mat uses.
//
// Complexity quicksheet:
//   - NewDense: O(N) copy; WrapDense: O(N) finiteness scan, no copy.
//   - Dot, AddScaledTo, Expanded: O(N).

package features

import (
	"math"

	"gonum.org/v1/gonum/blas/blas64"
)

const (
	ctxDenseDot = "Dense.Dot"
	ctxDenseAdd = "Dense.AddScaledTo"
)

// Dense is an ordered sequence of activations; len(data) is the dimension.
type Dense struct {
	data []float64 // len == Dim(), every position meaningful
}

// NewDense copies values into a new Dense vector.
//
// Errors:
//   - ErrInvalidDimension when values is empty.
//   - ErrNaNInf when any value is not finite.
func NewDense(values []float64) (*Dense, error) {
	if err := validateDense(values); err != nil {
		return nil, err
	}
	buf := make([]float64, len(values))
	copy(buf, values)

	return &Dense{data: buf}, nil
}

// WrapDense adopts values without copying. The caller must not mutate values
// afterwards. Bases use it for freshly allocated projection buffers.
func WrapDense(values []float64) (*Dense, error) {
	if err := validateDense(values); err != nil {
		return nil, err
	}

	return &Dense{data: values}, nil
}

// validateDense enforces the shape and numeric policy shared by constructors.
func validateDense(values []float64) error {
	if len(values) == 0 {
		return ErrInvalidDimension
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
	}

	return nil
}

// Dim returns the number of activations. Complexity: O(1).
func (d *Dense) Dim() int { return len(d.data) }

// IsSparse is always false.
func (d *Dense) IsSparse() bool { return false }

// NNZ equals Dim for dense vectors.
func (d *Dense) NNZ() int { return len(d.data) }

// At returns activation i, 0 when i is outside [0, Dim()).
func (d *Dense) At(i int) float64 {
	if i < 0 || i >= len(d.data) {
		return 0
	}

	return d.data[i]
}

// view exposes the activations as a unit-stride blas64 vector.
func (d *Dense) view() blas64.Vector {
	return blas64.Vector{N: len(d.data), Data: d.data, Inc: 1}
}

// Dot computes the full inner product with col.
// Complexity: O(N).
func (d *Dense) Dot(col blas64.Vector) (float64, error) {
	if err := checkColumn(ctxDenseDot, len(d.data), col); err != nil {
		return 0, err
	}

	return blas64.Dot(d.view(), col), nil
}

// AddScaledTo performs col += alpha·d in place (BLAS axpy).
// alpha == 0 leaves col untouched.
// Complexity: O(N).
func (d *Dense) AddScaledTo(col blas64.Vector, alpha float64) error {
	if err := checkColumn(ctxDenseAdd, len(d.data), col); err != nil {
		return err
	}
	if alpha == 0 {
		return nil
	}
	blas64.Axpy(alpha, d.view(), col)

	return nil
}

// Each visits every position in order.
func (d *Dense) Each(fn func(i int, v float64)) {
	for i, v := range d.data {
		fn(i, v)
	}
}

// Expanded returns a copy of the activations.
func (d *Dense) Expanded() []float64 {
	out := make([]float64, len(d.data))
	copy(out, d.data)

	return out
}
