// SPDX-License-Identifier: MIT

package approx

import (
	"github.com/katalvlaran/lfa/basis"
	"github.com/katalvlaran/lfa/features"
)

const ctxVector = "Vector"

// Vector predicts Arity() outputs, one weight column each, all from the same
// projection: y_j = φ(x) · W[:, j]. Typical use is one column per discrete
// action in Q-learning.
type Vector struct {
	core
}

// NewVector builds an approximator with arity outputs over b.
//
// Errors: ErrNilBasis, ErrInvalidArity, ErrDimensionMismatch or ErrNaNInf for
// bad initial weights.
func NewVector(b basis.Basis, arity int, opts ...Option) (*Vector, error) {
	c, err := newCore(ctxVector, b, arity, opts)
	if err != nil {
		return nil, err
	}

	return &Vector{core: c}, nil
}

// NewPair builds a two-output approximator, e.g. the mean and scale of a
// parametrised distribution.
func NewPair(b basis.Basis, opts ...Option) (*Vector, error) {
	return NewVector(b, 2, opts...)
}

// Predict projects x once and returns all outputs in column order.
func (v *Vector) Predict(x []float64) ([]float64, error) {
	f, err := v.basis.Project(x)
	if err != nil {
		return nil, err
	}

	return v.PredictFeatures(f, nil)
}

// PredictInto is Predict writing into dst, which must have length Arity().
func (v *Vector) PredictInto(x []float64, dst []float64) error {
	if len(dst) != v.Arity() {
		return features.MismatchError("Vector.PredictInto", v.Arity(), len(dst))
	}
	f, err := v.basis.Project(x)
	if err != nil {
		return err
	}
	_, err = v.PredictFeatures(f, dst)

	return err
}

// PredictFeatures evaluates every column for an already projected input. A
// nil dst is allocated.
func (v *Vector) PredictFeatures(f features.Vector, dst []float64) ([]float64, error) {
	return v.store.PredictAll(f, dst)
}

// PredictIndex returns output j only.
func (v *Vector) PredictIndex(x []float64, j int) (float64, error) {
	f, err := v.basis.Project(x)
	if err != nil {
		return 0, err
	}

	return v.store.Predict(f, j)
}

// Update projects x once and applies W[:, j] += lr · errs[j] · φ(x) for every
// column. len(errs) must equal Arity().
func (v *Vector) Update(x []float64, errs []float64, lr float64) error {
	if len(errs) != v.Arity() {
		return v.rejected("Vector.Update", features.MismatchError("Vector.Update", v.Arity(), len(errs)))
	}
	f, err := v.basis.Project(x)
	if err != nil {
		return v.rejected("Vector.Update", err)
	}

	return v.UpdateFeatures(f, errs, lr)
}

// UpdateFeatures is Update for an already projected input.
func (v *Vector) UpdateFeatures(f features.Vector, errs []float64, lr float64) error {
	if len(errs) != v.Arity() {
		return v.rejected("Vector.UpdateFeatures", features.MismatchError("Vector.UpdateFeatures", v.Arity(), len(errs)))
	}
	deltas := make([]float64, len(errs))
	for j, e := range errs {
		deltas[j] = lr * e
	}
	if err := v.store.UpdateAll(f, deltas); err != nil {
		return v.rejected("Vector.UpdateFeatures", err)
	}

	return nil
}

// UpdateIndex applies W[:, j] += lr · errSignal · φ(x) to column j only.
func (v *Vector) UpdateIndex(x []float64, j int, errSignal, lr float64) error {
	f, err := v.basis.Project(x)
	if err != nil {
		return v.rejected("Vector.UpdateIndex", err)
	}
	if err = v.store.Update(f, j, lr*errSignal); err != nil {
		return v.rejected("Vector.UpdateIndex", err)
	}

	return nil
}

// PredictAndUpdate projects x once, passes all predictions to errFn and
// applies the returned per-column error signals with rate lr. It returns the
// predictions made before the update.
func (v *Vector) PredictAndUpdate(x []float64, lr float64, errFn func(pred []float64) []float64) ([]float64, error) {
	f, err := v.basis.Project(x)
	if err != nil {
		return nil, v.rejected("Vector.PredictAndUpdate", err)
	}
	pred, err := v.PredictFeatures(f, nil)
	if err != nil {
		return nil, err
	}
	// errFn may keep or modify its argument
	errs := errFn(append([]float64(nil), pred...))
	if err = v.UpdateFeatures(f, errs, lr); err != nil {
		return pred, err
	}

	return pred, nil
}

// Gradient returns ∂y_j/∂W[:, j] = φ(x), identical for every column.
func (v *Vector) Gradient(x []float64) ([]float64, error) {
	f, err := v.basis.Project(x)
	if err != nil {
		return nil, err
	}

	return f.Expanded(), nil
}
