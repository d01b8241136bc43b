// SPDX-License-Identifier: MIT
// Package basis: sentinel error set.
// Construction errors are fatal at construction time only; a basis that was
// built successfully never reports ErrInvalidConfiguration from Project.

package basis

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lfa/features"
)

var (
	// ErrInvalidConfiguration is returned by constructors and Build for
	// nonsensical parameters: zero tilings, empty RBF centre set, negative
	// degree, malformed bounds, inapplicable options, unknown kinds.
	ErrInvalidConfiguration = errors.New("basis: invalid configuration")

	// ErrOutOfBounds is returned by bounded grids (tile coding) when an input
	// coordinate lies outside its configured bounds. Callers may clamp with
	// ClampToBounds and retry.
	ErrOutOfBounds = errors.New("basis: input outside bounds")
)

// SHARED SENTINELS
// Re-exported so callers of this package need not import features to match
// errors.Is. They are the same values, not copies.

// ErrDimensionMismatch aliases features.ErrDimensionMismatch. Projection of a
// point with the wrong length returns a *features.DimensionError.
var ErrDimensionMismatch = features.ErrDimensionMismatch

// ErrNaNInf aliases features.ErrNaNInf. Non-finite inputs are rejected.
var ErrNaNInf = features.ErrNaNInf

// configErrorf tags ErrInvalidConfiguration with constructor context.
func configErrorf(ctor, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", ctor, fmt.Sprintf(format, args...), ErrInvalidConfiguration)
}
