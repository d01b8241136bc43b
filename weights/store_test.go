// SPDX-License-Identifier: MIT

package weights_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lfa/features"
	"github.com/katalvlaran/lfa/weights"
)

const tol = 1e-12

// table3x2 is
//
//	[1, 2]
//	[3, 4]
//	[5, 6]
func table3x2(t *testing.T, opts ...weights.Option) *weights.Store {
	t.Helper()
	s, err := weights.NewFromValues(3, 2, []float64{1, 2, 3, 4, 5, 6}, opts...)
	require.NoError(t, err)

	return s
}

func mustDense(t *testing.T, v ...float64) *features.Dense {
	t.Helper()
	d, err := features.NewDense(v)
	require.NoError(t, err)

	return d
}

func mustBinary(t *testing.T, dim int, idx ...int) *features.Sparse {
	t.Helper()
	s, err := features.NewBinarySparse(dim, idx)
	require.NoError(t, err)

	return s
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	for _, shape := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := weights.New(shape[0], shape[1])
		assert.ErrorIs(t, err, weights.ErrInvalidDimensions)
	}

	s, err := weights.New(4, 3)
	require.NoError(t, err)
	r, c := s.Shape()
	assert.Equal(t, 4, r)
	assert.Equal(t, 3, c)
	for _, v := range s.Snapshot().Data {
		assert.Zero(t, v)
	}
}

// TestNewFromValues_Mismatch rejects initial values that do not cover rows×cols.
func TestNewFromValues_Mismatch(t *testing.T) {
	t.Parallel()

	_, err := weights.NewFromValues(3, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, weights.ErrDimensionMismatch)
	var de *features.DimensionError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 6, de.Expected)
	assert.Equal(t, 3, de.Actual)

	_, err = weights.NewFromValues(1, 2, []float64{1, math.NaN()})
	assert.ErrorIs(t, err, weights.ErrNaNInf)

	s, err := weights.NewFromValues(1, 2, []float64{1, math.Inf(1)}, weights.WithNoValidateNaNInf())
	require.NoError(t, err)
	v, err := s.At(0, 1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))
}

// TestPredict_DenseAndSparse checks both representations against the table.
func TestPredict_DenseAndSparse(t *testing.T) {
	t.Parallel()

	s := table3x2(t)

	got, err := s.PredictAll(mustDense(t, 1, 1, 1), nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 12}, got)

	sp := mustBinary(t, 3, 0, 2)
	p0, err := s.Predict(sp, 0)
	require.NoError(t, err)
	p1, err := s.Predict(sp, 1)
	require.NoError(t, err)
	assert.Equal(t, 6.0, p0)
	assert.Equal(t, 8.0, p1)

	dst := make([]float64, 2)
	out, err := s.PredictAll(sp, dst)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 8}, dst)
	assert.Equal(t, dst, out)

	_, err = s.PredictAll(sp, make([]float64, 3))
	assert.ErrorIs(t, err, weights.ErrDimensionMismatch)
}

// TestUpdate_TouchesOnlyActiveRows checks a sparse update writes one entry.
func TestUpdate_TouchesOnlyActiveRows(t *testing.T) {
	t.Parallel()

	s := table3x2(t)
	require.NoError(t, s.Update(mustBinary(t, 3, 1), 1, 0.5))
	assert.Equal(t, []float64{1, 2, 3, 4.5, 5, 6}, s.Snapshot().Data)

	require.NoError(t, s.Update(mustDense(t, 1, 0, -1), 0, 2))
	assert.Equal(t, []float64{3, 2, 3, 4.5, 3, 6}, s.Snapshot().Data)
}

// TestUpdate_ZeroAndInverse: delta 0 changes nothing, and an update followed
// by its negation restores the table.
func TestUpdate_ZeroAndInverse(t *testing.T) {
	t.Parallel()

	s := table3x2(t)
	before := s.Snapshot()
	f := mustDense(t, 0.3, -1.7, 2.25)

	require.NoError(t, s.Update(f, 0, 0))
	require.NoError(t, s.UpdateAll(f, []float64{0, 0}))
	assert.Equal(t, before, s.Snapshot())

	require.NoError(t, s.UpdateAll(f, []float64{0.7, -0.1}))
	assert.NotEqual(t, before, s.Snapshot())
	require.NoError(t, s.UpdateAll(f, []float64{-0.7, 0.1}))
	assert.InDeltaSlice(t, before.Data, s.Snapshot().Data, tol)
}

// TestUpdate_Rejected leaves the table untouched on every error path.
func TestUpdate_Rejected(t *testing.T) {
	t.Parallel()

	s := table3x2(t)
	before := s.Snapshot()
	f := mustDense(t, 1, 1, 1)

	err := s.Update(mustDense(t, 1, 1, 1, 1), 0, 1)
	require.ErrorIs(t, err, weights.ErrDimensionMismatch)
	var de *features.DimensionError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 3, de.Expected)
	assert.Equal(t, 4, de.Actual)

	assert.ErrorIs(t, s.Update(f, 2, 1), weights.ErrOutOfRange)
	assert.ErrorIs(t, s.Update(f, -1, 1), weights.ErrOutOfRange)
	assert.ErrorIs(t, s.Update(f, 0, math.NaN()), weights.ErrNaNInf)
	assert.ErrorIs(t, s.UpdateAll(f, []float64{1, math.Inf(-1)}), weights.ErrNaNInf)
	assert.ErrorIs(t, s.UpdateAll(f, []float64{1}), weights.ErrDimensionMismatch)
	assert.ErrorIs(t, s.Update(nil, 0, 1), weights.ErrDimensionMismatch)

	assert.Equal(t, before, s.Snapshot())
}

// TestColumn_View checks the strided view aliases the table.
func TestColumn_View(t *testing.T) {
	t.Parallel()

	s := table3x2(t)
	col, err := s.Column(1)
	require.NoError(t, err)
	require.Equal(t, 3, col.N)
	assert.Equal(t, 4.0, col.Data[col.Inc])

	col.Data[2*col.Inc] = 60
	v, err := s.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 60.0, v)

	_, err = s.Column(2)
	assert.ErrorIs(t, err, weights.ErrOutOfRange)
}

func TestAtSet(t *testing.T) {
	t.Parallel()

	s := table3x2(t)
	require.NoError(t, s.Set(2, 0, -5))
	v, err := s.At(2, 0)
	require.NoError(t, err)
	assert.Equal(t, -5.0, v)

	_, err = s.At(3, 0)
	assert.ErrorIs(t, err, weights.ErrOutOfRange)
	assert.ErrorIs(t, s.Set(0, 2, 1), weights.ErrOutOfRange)
	assert.ErrorIs(t, s.Set(0, 0, math.NaN()), weights.ErrNaNInf)

	lax := table3x2(t, weights.WithNoValidateNaNInf())
	assert.NoError(t, lax.Set(0, 0, math.NaN()))
}

// TestAddRaw adds a whole gonum matrix.
func TestAddRaw(t *testing.T) {
	t.Parallel()

	s := table3x2(t)
	require.NoError(t, s.AddRaw(mat.NewDense(3, 2, []float64{1, 1, 1, 1, 1, -6})))
	assert.Equal(t, []float64{2, 3, 4, 5, 6, 0}, s.Snapshot().Data)

	before := s.Snapshot()
	assert.ErrorIs(t, s.AddRaw(mat.NewDense(2, 3, nil)), weights.ErrDimensionMismatch)
	assert.ErrorIs(t, s.AddRaw(mat.NewDense(3, 2, []float64{0, 0, 0, math.NaN(), 0, 0})), weights.ErrNaNInf)
	assert.ErrorIs(t, s.AddRaw(nil), weights.ErrNilStore)
	assert.Equal(t, before, s.Snapshot())
}

// TestSnapshot_RoundTrip restores through a YAML document.
func TestSnapshot_RoundTrip(t *testing.T) {
	t.Parallel()

	s := table3x2(t)
	require.NoError(t, s.Update(mustDense(t, 0.1, 0.2, 0.3), 1, 0.37))
	snap := s.Snapshot()

	doc, err := yaml.Marshal(snap)
	require.NoError(t, err)
	var back weights.Snapshot
	require.NoError(t, yaml.Unmarshal(doc, &back))
	assert.Equal(t, snap, back)

	restored, err := weights.FromSnapshot(back)
	require.NoError(t, err)
	assert.Equal(t, s.String(), restored.String())

	other, err := weights.New(3, 2)
	require.NoError(t, err)
	require.NoError(t, other.Restore(back))
	assert.Equal(t, snap, other.Snapshot())

	assert.ErrorIs(t, other.Restore(weights.Snapshot{Rows: 2, Cols: 3, Data: back.Data}), weights.ErrDimensionMismatch)
	assert.ErrorIs(t, other.Restore(weights.Snapshot{Rows: 3, Cols: 2, Data: back.Data[:5]}), weights.ErrDimensionMismatch)
	assert.Equal(t, snap, other.Snapshot())
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()

	s := table3x2(t)
	c := s.Clone()
	require.NoError(t, c.Set(0, 0, 100))
	v, err := s.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[1, 2]\n[3, 4]\n[5, 6]\n", table3x2(t).String())
}
