// SPDX-License-Identifier: MIT
// Package approx: sentinel error set.
// Approximators add only their own construction sentinels; everything raised
// by projection or the weight store surfaces unchanged and matches the
// aliases below with errors.Is.

package approx

import (
	"errors"

	"github.com/katalvlaran/lfa/basis"
	"github.com/katalvlaran/lfa/weights"
)

var (
	// ErrNilBasis is returned when an approximator is built without a basis.
	ErrNilBasis = errors.New("approx: nil basis")

	// ErrInvalidArity is returned for an output count < 1.
	ErrInvalidArity = errors.New("approx: arity must be > 0")

	// ErrNilTransform is returned when a Transformed approximator gets no transform.
	ErrNilTransform = errors.New("approx: nil transform")
)

// SHARED SENTINELS

var (
	// ErrDimensionMismatch: wrong input length, wrong error-vector length, or
	// initial weights that do not cover Dim()×Arity().
	ErrDimensionMismatch = basis.ErrDimensionMismatch

	// ErrNaNInf: non-finite input, delta, or weight.
	ErrNaNInf = basis.ErrNaNInf

	// ErrOutOfBounds: a bounded basis (tile coding) rejected the input.
	ErrOutOfBounds = basis.ErrOutOfBounds

	// ErrOutOfRange: output index outside [0, Arity()).
	ErrOutOfRange = weights.ErrOutOfRange
)
