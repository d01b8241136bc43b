// SPDX-License-Identifier: MIT
// Package features: sentinel error set.
// All constructors and kernels in this package return these sentinels (or a
// typed error that unwraps to one of them). Tests MUST match via errors.Is.
// No function in this package panics on user-triggered conditions.

package features

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates incompatible lengths between a feature
	// vector and a weight column, or between an input point and a basis.
	ErrDimensionMismatch = errors.New("features: dimension mismatch")

	// ErrInvalidIndex indicates a sparse index outside [0, dim).
	ErrInvalidIndex = errors.New("features: invalid index")

	// ErrDuplicateIndex indicates a sparse index listed more than once.
	ErrDuplicateIndex = errors.New("features: duplicate index")

	// ErrInvalidDimension indicates a declared dimension <= 0.
	ErrInvalidDimension = errors.New("features: dimension must be > 0")

	// ErrNaNInf indicates a NaN or ±Inf activation at construction.
	ErrNaNInf = errors.New("features: NaN or Inf encountered")
)

// DimensionError carries the expected and actual lengths of a failed call.
// errors.Is(err, ErrDimensionMismatch) holds for every *DimensionError.
type DimensionError struct {
	Op       string // operation tag, e.g. "Dense.Dot"
	Expected int
	Actual   int
}

// Error implements error.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: expected %d, actual %d: %v", e.Op, e.Expected, e.Actual, ErrDimensionMismatch)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// MismatchError builds a *DimensionError for op.
func MismatchError(op string, expected, actual int) error {
	return &DimensionError{Op: op, Expected: expected, Actual: actual}
}

// IndexError carries the offending sparse index and the declared dimension.
// Err is ErrInvalidIndex or ErrDuplicateIndex.
type IndexError struct {
	Index int
	Dim   int
	Err   error
}

// Error implements error.
func (e *IndexError) Error() string {
	return fmt.Sprintf("features.Sparse(dim=%d): index %d: %v", e.Dim, e.Index, e.Err)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *IndexError) Unwrap() error { return e.Err }
