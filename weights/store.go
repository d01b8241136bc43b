// SPDX-License-Identifier: MIT

// Package weights - row-major weight table & column primitives.
//
// Purpose:
//   - Hold the rows×cols table W (rows = basis dimension, cols = arity) on a
//     gonum *mat.Dense, so whole-table algebra (AddRaw) reuses gonum.
//   - Expose each column as a strided blas64.Vector view (no copy), the only
//     shape the feature primitives Dot and AddScaledTo consume.
//   - Keep the public surface safe: indexers and updates return errors.
//   - Enforce the numeric policy before any write, so a rejected call never
//     leaves a partially updated table.
//
// Concurrency:
//   - No internal locking. One writer at a time, or writers on disjoint
//     columns with external coordination.
//
// Complexity quicksheet:
//   - New: O(r*c); At/Set/Column: O(1); Predict/Update: O(NNZ(f));
//     PredictAll/UpdateAll: O(c*NNZ(f)); Clone/Snapshot/Restore: O(r*c).

package weights

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lfa/features"
)

// ---------- error context tags ----------

const (
	ctxAt         = "At"
	ctxSet        = "Set"
	ctxColumn     = "Column"
	ctxPredict    = "Predict"
	ctxUpdate     = "Update"
	ctxPredictAll = "PredictAll"
	ctxUpdateAll  = "UpdateAll"
	ctxAddRaw     = "AddRaw"
	ctxRestore    = "Restore"
	ctxNew        = "NewFromValues"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// storeErrorf wraps a sentinel with the method tag and the offending
// coordinates.
func storeErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Store.%s(%d,%d): %w", method, row, col, err)
}

// Store is the weight table of one approximator.
type Store struct {
	m              *mat.Dense
	validateNaNInf bool // reject non-finite writes when true
}

var _ fmt.Stringer = (*Store)(nil)

// New creates a rows×cols zero table.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
func New(rows, cols int, opts ...Option) (*Store, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Store{m: mat.NewDense(rows, cols, nil), validateNaNInf: o.validateNaNInf}, nil
}

// NewFromValues creates a rows×cols table from row-major values (copied).
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//   - ErrDimensionMismatch when len(values) != rows*cols.
//   - ErrNaNInf for a non-finite value under the default policy.
func NewFromValues(rows, cols int, values []float64, opts ...Option) (*Store, error) {
	s, err := New(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, features.MismatchError(ctxNew, rows*cols, len(values))
	}
	if err = s.checkFinite(ctxNew, values); err != nil {
		return nil, err
	}
	copy(s.m.RawMatrix().Data, values)

	return s, nil
}

// Rows returns the basis dimension the table is sized for.
func (s *Store) Rows() int {
	r, _ := s.m.Dims()

	return r
}

// Cols returns the arity.
func (s *Store) Cols() int {
	_, c := s.m.Dims()

	return c
}

// Shape returns (rows, cols).
func (s *Store) Shape() (rows, cols int) { return s.m.Dims() }

// Column returns column j as a strided view over the table. Writes through the
// view mutate the store.
//
// Errors: ErrOutOfRange when j is outside [0, cols).
func (s *Store) Column(j int) (blas64.Vector, error) {
	if j < 0 || j >= s.Cols() {
		return blas64.Vector{}, storeErrorf(ctxColumn, 0, j, ErrOutOfRange)
	}

	return s.column(j), nil
}

// column is Column without the range check.
func (s *Store) column(j int) blas64.Vector {
	raw := s.m.RawMatrix()

	return blas64.Vector{N: raw.Rows, Data: raw.Data[j:], Inc: raw.Stride}
}

// checkFeatures matches the feature dimension against the row count.
func (s *Store) checkFeatures(op string, f features.Vector) error {
	if f == nil {
		return fmt.Errorf("Store.%s: nil features: %w", op, ErrDimensionMismatch)
	}
	if f.Dim() != s.Rows() {
		return features.MismatchError("Store."+op, s.Rows(), f.Dim())
	}

	return nil
}

// checkFinite applies the numeric policy to a batch of values.
func (s *Store) checkFinite(op string, vs []float64) error {
	if !s.validateNaNInf {
		return nil
	}
	for k, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("Store.%s: value %d = %g: %w", op, k, v, ErrNaNInf)
		}
	}

	return nil
}

// Predict returns f · W[:, j].
//
// Errors: ErrDimensionMismatch when f.Dim() != Rows(), ErrOutOfRange for j.
func (s *Store) Predict(f features.Vector, j int) (float64, error) {
	if err := s.checkFeatures(ctxPredict, f); err != nil {
		return 0, err
	}
	if j < 0 || j >= s.Cols() {
		return 0, storeErrorf(ctxPredict, 0, j, ErrOutOfRange)
	}

	return f.Dot(s.column(j))
}

// Update applies W[:, j] += delta · f, touching only the rows f stores.
// delta == 0 is a no-op.
//
// Errors: ErrDimensionMismatch, ErrOutOfRange, ErrNaNInf. The table is
// unchanged on error.
func (s *Store) Update(f features.Vector, j int, delta float64) error {
	if err := s.checkFeatures(ctxUpdate, f); err != nil {
		return err
	}
	if j < 0 || j >= s.Cols() {
		return storeErrorf(ctxUpdate, 0, j, ErrOutOfRange)
	}
	if err := s.checkFinite(ctxUpdate, []float64{delta}); err != nil {
		return err
	}

	return f.AddScaledTo(s.column(j), delta)
}

// PredictAll writes f · W[:, j] for every column into dst and returns it. A
// nil dst is allocated; otherwise len(dst) must equal Cols().
func (s *Store) PredictAll(f features.Vector, dst []float64) ([]float64, error) {
	if err := s.checkFeatures(ctxPredictAll, f); err != nil {
		return nil, err
	}
	cols := s.Cols()
	if dst == nil {
		dst = make([]float64, cols)
	}
	if len(dst) != cols {
		return nil, features.MismatchError("Store."+ctxPredictAll, cols, len(dst))
	}
	for j := 0; j < cols; j++ {
		v, err := f.Dot(s.column(j))
		if err != nil {
			return nil, err
		}
		dst[j] = v
	}

	return dst, nil
}

// UpdateAll applies W[:, j] += deltas[j] · f for every column. All deltas are
// validated before the first write.
//
// Errors: ErrDimensionMismatch for f or len(deltas) != Cols(), ErrNaNInf.
func (s *Store) UpdateAll(f features.Vector, deltas []float64) error {
	if err := s.checkFeatures(ctxUpdateAll, f); err != nil {
		return err
	}
	if len(deltas) != s.Cols() {
		return features.MismatchError("Store."+ctxUpdateAll, s.Cols(), len(deltas))
	}
	if err := s.checkFinite(ctxUpdateAll, deltas); err != nil {
		return err
	}
	for j, d := range deltas {
		if err := f.AddScaledTo(s.column(j), d); err != nil {
			return err
		}
	}

	return nil
}

// At returns W[row, col].
func (s *Store) At(row, col int) (float64, error) {
	if !s.inRange(row, col) {
		return 0, storeErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return s.m.At(row, col), nil
}

// Set assigns W[row, col] = v under the numeric policy.
func (s *Store) Set(row, col int, v float64) error {
	if !s.inRange(row, col) {
		return storeErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if s.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return storeErrorf(ctxSet, row, col, ErrNaNInf)
	}
	s.m.Set(row, col, v)

	return nil
}

func (s *Store) inRange(row, col int) bool {
	r, c := s.m.Dims()

	return row >= 0 && row < r && col >= 0 && col < c
}

// AddRaw applies W += delta for a whole-table increment, e.g. an accumulated
// gradient or an eligibility-trace sweep.
//
// Errors: ErrNilStore for a nil delta, ErrDimensionMismatch for a shape
// other than Shape(), ErrNaNInf under the policy. The table is unchanged on
// error.
func (s *Store) AddRaw(delta mat.Matrix) error {
	if delta == nil {
		return fmt.Errorf("Store.%s: nil delta: %w", ctxAddRaw, ErrNilStore)
	}
	r, c := s.m.Dims()
	dr, dc := delta.Dims()
	if dr != r || dc != c {
		return fmt.Errorf("Store.%s: delta %dx%d, store %dx%d: %w", ctxAddRaw, dr, dc, r, c, ErrDimensionMismatch)
	}
	if s.validateNaNInf {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if v := delta.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
					return storeErrorf(ctxAddRaw, i, j, ErrNaNInf)
				}
			}
		}
	}
	s.m.Add(s.m, delta)

	return nil
}

// Clone returns an independent deep copy with the same policy.
func (s *Store) Clone() *Store {
	return &Store{m: mat.DenseCopyOf(s.m), validateNaNInf: s.validateNaNInf}
}

// String renders one bracketed row per line.
func (s *Store) String() string {
	var b strings.Builder
	r, c := s.m.Dims()
	for i := 0; i < r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < c; j++ {
			b.WriteString(fmt.Sprintf("%g", s.m.At(i, j)))
			if j+1 < c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
