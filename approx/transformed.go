// SPDX-License-Identifier: MIT

package approx

import (
	"fmt"

	"github.com/katalvlaran/lfa/basis"
	"github.com/katalvlaran/lfa/features"
)

const ctxTransformed = "Transformed"

// Transformed predicts g(φ(x) · w) for a Transform g. Updates follow the
// chain rule, so the caller's error signal is with respect to the transformed
// output: w += lr · err · g'(z) · φ(x).
type Transformed struct {
	core
	g Transform
}

// NewTransformed builds a single-output approximator over b with output link g.
//
// Errors: ErrNilTransform plus every NewScalar error.
func NewTransformed(b basis.Basis, g Transform, opts ...Option) (*Transformed, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", ctxTransformed, ErrNilTransform)
	}
	c, err := newCore(ctxTransformed, b, 1, opts)
	if err != nil {
		return nil, err
	}

	return &Transformed{core: c, g: g}, nil
}

// Transform returns the output link.
func (t *Transformed) Transform() Transform { return t.g }

// Linear returns the untransformed z = φ(x) · w.
func (t *Transformed) Linear(x []float64) (float64, error) {
	f, err := t.basis.Project(x)
	if err != nil {
		return 0, err
	}

	return t.store.Predict(f, 0)
}

// Predict returns g(φ(x) · w).
func (t *Transformed) Predict(x []float64) (float64, error) {
	f, err := t.basis.Project(x)
	if err != nil {
		return 0, err
	}

	return t.PredictFeatures(f)
}

// PredictFeatures returns g(f · w).
func (t *Transformed) PredictFeatures(f features.Vector) (float64, error) {
	z, err := t.store.Predict(f, 0)
	if err != nil {
		return 0, err
	}

	return t.g.Apply(z), nil
}

// Update projects x once and applies w += lr · errSignal · g'(z) · φ(x).
func (t *Transformed) Update(x []float64, errSignal, lr float64) error {
	f, err := t.basis.Project(x)
	if err != nil {
		return t.rejected("Transformed.Update", err)
	}

	return t.UpdateFeatures(f, errSignal, lr)
}

// UpdateFeatures is Update for an already projected input.
func (t *Transformed) UpdateFeatures(f features.Vector, errSignal, lr float64) error {
	z, err := t.store.Predict(f, 0)
	if err != nil {
		return t.rejected("Transformed.UpdateFeatures", err)
	}

	return t.apply(f, z, errSignal, lr)
}

// PredictAndUpdate projects x once, passes g(z) to errFn and applies the
// returned error signal through the chain rule. It returns the prediction
// made before the update.
func (t *Transformed) PredictAndUpdate(x []float64, lr float64, errFn func(pred float64) float64) (float64, error) {
	f, err := t.basis.Project(x)
	if err != nil {
		return 0, t.rejected("Transformed.PredictAndUpdate", err)
	}
	z, err := t.store.Predict(f, 0)
	if err != nil {
		return 0, err
	}
	pred := t.g.Apply(z)

	return pred, t.apply(f, z, errFn(pred), lr)
}

func (t *Transformed) apply(f features.Vector, z, errSignal, lr float64) error {
	if err := t.store.Update(f, 0, lr*errSignal*t.g.Derivative(z)); err != nil {
		return t.rejected("Transformed.Update", err)
	}

	return nil
}

// Gradient returns ∂Predict(x)/∂w = g'(z) · φ(x), densely.
func (t *Transformed) Gradient(x []float64) ([]float64, error) {
	f, err := t.basis.Project(x)
	if err != nil {
		return nil, err
	}
	z, err := t.store.Predict(f, 0)
	if err != nil {
		return nil, err
	}
	d := t.g.Derivative(z)
	out := f.Expanded()
	for i := range out {
		out[i] *= d
	}

	return out, nil
}
