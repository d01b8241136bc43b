// SPDX-License-Identifier: MIT

package approx

import "math"

// Transform is a differentiable output link g applied to the linear
// prediction z = φ(x) · w.
type Transform interface {
	// Apply returns g(z).
	Apply(z float64) float64
	// Derivative returns g'(z).
	Derivative(z float64) float64
}

// Identity is g(z) = z.
type Identity struct{}

func (Identity) Apply(z float64) float64    { return z }
func (Identity) Derivative(float64) float64 { return 1 }

// Softplus is g(z) = ln(1 + e^z), a smooth positive link used for scale
// parameters. g'(z) is the logistic function.
type Softplus struct{}

// Apply is evaluated without overflow for large |z|.
func (Softplus) Apply(z float64) float64 {
	if z > 0 {
		return z + math.Log1p(math.Exp(-z))
	}

	return math.Log1p(math.Exp(z))
}

func (Softplus) Derivative(z float64) float64 { return logistic(z) }

// Logistic is g(z) = 1 / (1 + e^-z), mapping onto (0, 1).
type Logistic struct{}

func (Logistic) Apply(z float64) float64 { return logistic(z) }

func (Logistic) Derivative(z float64) float64 {
	s := logistic(z)

	return s * (1 - s)
}

// Exp is g(z) = e^z.
type Exp struct{}

func (Exp) Apply(z float64) float64      { return math.Exp(z) }
func (Exp) Derivative(z float64) float64 { return math.Exp(z) }

func logistic(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)

	return e / (1 + e)
}
