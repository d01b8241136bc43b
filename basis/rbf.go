// SPDX-License-Identifier: MIT

package basis

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lfa/features"
)

const (
	ctxRBF     = "RBFNetwork"
	ctxRBFGrid = "NewRBFGrid"
)

// RBFNetwork is the dense Gaussian radial basis
// exp(-‖x-c_i‖² / (2·w_i²)) over fixed centres c_i and widths w_i.
type RBFNetwork struct {
	centers [][]float64
	widths  []float64 // len == len(centers)
}

// NewRBFNetwork builds a network over caller-supplied centres. widths holds
// either one shared width or one width per centre. Inputs are copied.
//
// Errors:
//   - ErrInvalidConfiguration for an empty centre set, ragged or non-finite
//     centres, a widths length other than 1 or len(centers), or a width <= 0.
func NewRBFNetwork(centers [][]float64, widths []float64) (*RBFNetwork, error) {
	if len(centers) == 0 {
		return nil, configErrorf(ctxRBF, "centre set must be non-empty")
	}
	dim := len(centers[0])
	if dim == 0 {
		return nil, configErrorf(ctxRBF, "centres must have at least one coordinate")
	}
	cs := make([][]float64, len(centers))
	for i, c := range centers {
		if len(c) != dim {
			return nil, configErrorf(ctxRBF, "centre %d has %d coordinates, want %d", i, len(c), dim)
		}
		for _, v := range c {
			if !finite(v) {
				return nil, configErrorf(ctxRBF, "centre %d is not finite", i)
			}
		}
		cs[i] = append([]float64(nil), c...)
	}

	ws := make([]float64, len(centers))
	switch len(widths) {
	case 1:
		for i := range ws {
			ws[i] = widths[0]
		}
	case len(centers):
		copy(ws, widths)
	default:
		return nil, configErrorf(ctxRBF, "%d widths for %d centres", len(widths), len(centers))
	}
	for i, w := range ws {
		if !finite(w) || w <= 0 {
			return nil, configErrorf(ctxRBF, "width %d = %g must be finite and > 0", i, w)
		}
	}

	return &RBFNetwork{centers: cs, widths: ws}, nil
}

// NewRBFGrid places perDim centres per dimension on a uniform grid spanning
// the bounds (endpoints included), ordered lexicographically. The shared width
// is the smallest grid spacing, or half the narrowest range when perDim == 1.
func NewRBFGrid(bounds []Bounds, perDim int) (*RBFNetwork, error) {
	if err := validateBounds(ctxRBFGrid, bounds); err != nil {
		return nil, err
	}
	if perDim <= 0 {
		return nil, configErrorf(ctxRBFGrid, "centres per dimension %d <= 0", perDim)
	}
	axes := make([][]float64, len(bounds))
	width := math.Inf(1)
	for k, b := range bounds {
		axes[k] = make([]float64, perDim)
		if perDim == 1 {
			axes[k][0] = b.Lo + b.Width()/2
			width = math.Min(width, b.Width()/2)
			continue
		}
		floats.Span(axes[k], b.Lo, b.Hi)
		width = math.Min(width, b.Width()/float64(perDim-1))
	}
	idx, err := fullGrid(ctxRBFGrid, perDim-1, len(bounds))
	if err != nil {
		return nil, err
	}
	centers := make([][]float64, len(idx))
	for i, sub := range idx {
		c := make([]float64, len(bounds))
		for k, j := range sub {
			c[k] = axes[k][j]
		}
		centers[i] = c
	}

	return NewRBFNetwork(centers, []float64{width})
}

func (r *RBFNetwork) sealed() {}

// InputDim returns the centre dimensionality.
func (r *RBFNetwork) InputDim() int { return len(r.centers[0]) }

// Dim returns the number of centres.
func (r *RBFNetwork) Dim() int { return len(r.centers) }

// IsSparse is false.
func (r *RBFNetwork) IsSparse() bool { return false }

// Project evaluates every Gaussian at x.
// Complexity: O(Dim·InputDim).
func (r *RBFNetwork) Project(x []float64) (features.Vector, error) {
	if err := checkInput(ctxRBF, len(r.centers[0]), x); err != nil {
		return nil, err
	}
	out := make([]float64, len(r.centers))
	for i, c := range r.centers {
		d := floats.Distance(x, c, 2)
		w := r.widths[i]
		out[i] = math.Exp(-d * d / (2 * w * w))
	}

	return features.WrapDense(out)
}

// Config returns the plain-data description.
func (r *RBFNetwork) Config() Config {
	cs := make([][]float64, len(r.centers))
	for i, c := range r.centers {
		cs[i] = append([]float64(nil), c...)
	}

	return Config{
		Kind:     KindRBF,
		InputDim: len(r.centers[0]),
		Centers:  cs,
		Widths:   append([]float64(nil), r.widths...),
	}
}
