// SPDX-License-Identifier: MIT

// Package basis - the Basis capability, domain bounds and shared input guards.
//
// Purpose:
//   - Define the closed Basis interface implemented by Polynomial, Fourier,
//     RBFNetwork, TileCoding, Constant and the Stack/Scale combinators.
//   - Centralise input validation so every variant fails identically on a
//     wrong-length or non-finite point.

package basis

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lfa/features"
)

// AnyInput is the InputDim of bases that ignore their input (Constant).
const AnyInput = -1

// MaxTerms caps the number of enumerated polynomial/Fourier terms and the
// dimension of unhashed tile codings.
const MaxTerms = 1 << 24

// Basis projects an input point to a feature vector of fixed dimension.
//
// Implementations are immutable after construction and safe for concurrent
// Project calls. The set is closed: only this package implements it.
type Basis interface {
	// InputDim returns the accepted input length, or AnyInput.
	InputDim() int

	// Dim returns the output dimension; every projection has exactly Dim()
	// positions.
	Dim() int

	// IsSparse reports whether Project returns *features.Sparse.
	IsSparse() bool

	// Project maps x to its feature vector.
	// Errors: *features.DimensionError on len(x) mismatch, ErrNaNInf on
	// non-finite coordinates, ErrOutOfBounds for bounded grids.
	Project(x []float64) (features.Vector, error)

	// Config returns the plain-data description from which Build restores an
	// identical basis.
	Config() Config

	sealed()
}

// Bounds is the closed interval [Lo, Hi] of one input dimension.
type Bounds struct {
	Lo float64 `yaml:"lo" json:"lo"`
	Hi float64 `yaml:"hi" json:"hi"`
}

// Width returns Hi - Lo.
func (b Bounds) Width() float64 { return b.Hi - b.Lo }

// Contains reports whether v lies in [Lo, Hi].
func (b Bounds) Contains(v float64) bool { return v >= b.Lo && v <= b.Hi }

// Unit maps v to (v-Lo)/(Hi-Lo); [Lo,Hi] maps onto [0,1].
func (b Bounds) Unit(v float64) float64 { return (v - b.Lo) / (b.Hi - b.Lo) }

// validateBounds requires a non-empty list of finite intervals with Lo < Hi.
func validateBounds(ctor string, bounds []Bounds) error {
	if len(bounds) == 0 {
		return configErrorf(ctor, "bounds must be non-empty")
	}
	for k, b := range bounds {
		if !finite(b.Lo) || !finite(b.Hi) || !(b.Lo < b.Hi) {
			return configErrorf(ctor, "bounds[%d]=[%g,%g] must be finite with lo<hi", k, b.Lo, b.Hi)
		}
	}

	return nil
}

// copyBounds returns an independent copy.
func copyBounds(bounds []Bounds) []Bounds {
	if bounds == nil {
		return nil
	}
	out := make([]Bounds, len(bounds))
	copy(out, bounds)

	return out
}

// ClampToBounds returns a copy of x with each coordinate clamped into its
// interval. Extra coordinates beyond len(bounds) are copied unchanged.
func ClampToBounds(bounds []Bounds, x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	for k := 0; k < len(out) && k < len(bounds); k++ {
		out[k] = math.Min(math.Max(out[k], bounds[k].Lo), bounds[k].Hi)
	}

	return out
}

// checkInput enforces the shared projection contract. op names the caller.
func checkInput(op string, want int, x []float64) error {
	if want != AnyInput && len(x) != want {
		return features.MismatchError(op, want, len(x))
	}
	for k, v := range x {
		if !finite(v) {
			return fmt.Errorf("%s: x[%d]=%g: %w", op, k, v, ErrNaNInf)
		}
	}

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
