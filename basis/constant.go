// SPDX-License-Identifier: MIT

package basis

import (
	"github.com/katalvlaran/lfa/features"
)

const ctxConstant = "Constant"

// Constant is a dense basis whose n activations all equal Value, whatever the
// input. Stacked onto another basis it provides bias terms.
type Constant struct {
	n     int
	value float64
}

// NewConstant builds an n-dimensional constant basis.
// Errors: ErrInvalidConfiguration when n <= 0 or value is not finite.
func NewConstant(n int, value float64) (*Constant, error) {
	if n <= 0 {
		return nil, configErrorf(ctxConstant, "dimension %d <= 0", n)
	}
	if !finite(value) {
		return nil, configErrorf(ctxConstant, "value %g is not finite", value)
	}

	return &Constant{n: n, value: value}, nil
}

// Ones is NewConstant(n, 1).
func Ones(n int) (*Constant, error) { return NewConstant(n, 1) }

func (c *Constant) sealed() {}

// InputDim is AnyInput.
func (c *Constant) InputDim() int { return AnyInput }

// Dim returns n.
func (c *Constant) Dim() int { return c.n }

// IsSparse is false.
func (c *Constant) IsSparse() bool { return false }

// Value returns the activation.
func (c *Constant) Value() float64 { return c.value }

// Project ignores the coordinates of x but still rejects non-finite ones.
func (c *Constant) Project(x []float64) (features.Vector, error) {
	if err := checkInput(ctxConstant, AnyInput, x); err != nil {
		return nil, err
	}
	out := make([]float64, c.n)
	for i := range out {
		out[i] = c.value
	}

	return features.WrapDense(out)
}

// Config returns the plain-data description.
func (c *Constant) Config() Config {
	return Config{Kind: KindConstant, InputDim: AnyInput, Size: c.n, Value: c.value}
}
