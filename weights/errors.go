// SPDX-License-Identifier: MIT
// Package weights: sentinel error set.
// Every message is prefixed with "weights: ..."; detection sites wrap with
// "Store.<Method>(...): %w" so callers match with errors.Is.

package weights

import (
	"errors"

	"github.com/katalvlaran/lfa/features"
)

var (
	// ErrInvalidDimensions indicates that requested store dimensions are non-positive.
	ErrInvalidDimensions = errors.New("weights: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside the store.
	// Public indexers return this, never panic.
	ErrOutOfRange = errors.New("weights: index out of range")

	// ErrNilStore indicates a nil *Store receiver or argument.
	ErrNilStore = errors.New("weights: nil store")
)

// SHARED SENTINELS
// Same values as package features, so errors.Is works across layers.

// ErrDimensionMismatch aliases features.ErrDimensionMismatch: feature
// dimension ≠ rows, initial values ≠ rows·cols, or delta shape ≠ store shape.
var ErrDimensionMismatch = features.ErrDimensionMismatch

// ErrNaNInf aliases features.ErrNaNInf: a non-finite value or delta under the
// finite-only policy.
var ErrNaNInf = features.ErrNaNInf
