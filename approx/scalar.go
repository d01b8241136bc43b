// SPDX-License-Identifier: MIT

package approx

import (
	"github.com/katalvlaran/lfa/basis"
	"github.com/katalvlaran/lfa/features"
)

const ctxScalar = "Scalar"

// Scalar predicts one real value: φ(x) · w.
type Scalar struct {
	core
}

// NewScalar builds a single-output approximator over b with zero weights
// unless WithInitialWeights is given.
//
// Errors: ErrNilBasis, ErrDimensionMismatch for initial weights of the wrong
// length, ErrNaNInf for non-finite initial weights.
func NewScalar(b basis.Basis, opts ...Option) (*Scalar, error) {
	c, err := newCore(ctxScalar, b, 1, opts)
	if err != nil {
		return nil, err
	}

	return &Scalar{core: c}, nil
}

// Predict projects x and returns φ(x) · w.
func (s *Scalar) Predict(x []float64) (float64, error) {
	f, err := s.basis.Project(x)
	if err != nil {
		return 0, err
	}

	return s.PredictFeatures(f)
}

// PredictFeatures returns f · w for an already projected input.
func (s *Scalar) PredictFeatures(f features.Vector) (float64, error) {
	return s.store.Predict(f, 0)
}

// Update projects x and applies w += lr · errSignal · φ(x). errSignal is the
// caller's error term (TD error, target minus prediction, …); the
// approximator never computes it.
func (s *Scalar) Update(x []float64, errSignal, lr float64) error {
	f, err := s.basis.Project(x)
	if err != nil {
		return s.rejected("Scalar.Update", err)
	}

	return s.UpdateFeatures(f, errSignal, lr)
}

// UpdateFeatures applies w += lr · errSignal · f.
func (s *Scalar) UpdateFeatures(f features.Vector, errSignal, lr float64) error {
	if err := s.store.Update(f, 0, lr*errSignal); err != nil {
		return s.rejected("Scalar.UpdateFeatures", err)
	}

	return nil
}

// PredictAndUpdate projects x once, passes the prediction to errFn and
// applies the returned error signal with rate lr. It returns the prediction
// made before the update.
func (s *Scalar) PredictAndUpdate(x []float64, lr float64, errFn func(pred float64) float64) (float64, error) {
	f, err := s.basis.Project(x)
	if err != nil {
		return 0, s.rejected("Scalar.PredictAndUpdate", err)
	}
	pred, err := s.PredictFeatures(f)
	if err != nil {
		return 0, err
	}
	if err = s.UpdateFeatures(f, errFn(pred), lr); err != nil {
		return pred, err
	}

	return pred, nil
}

// Gradient returns ∂Predict(x)/∂w, which for a linear model is φ(x)
// materialised densely.
func (s *Scalar) Gradient(x []float64) ([]float64, error) {
	f, err := s.basis.Project(x)
	if err != nil {
		return nil, err
	}

	return f.Expanded(), nil
}
