// SPDX-License-Identifier: MIT
// Package features_test contains test helpers.
//
// Purpose:
//   - Build deterministic columns (unit and strided) for kernel tests.

package features_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/katalvlaran/lfa/features"
)

const tol = 1e-12

// unitColumn wraps data as a stride-1 column.
func unitColumn(data []float64) blas64.Vector {
	return blas64.Vector{N: len(data), Data: data, Inc: 1}
}

// stridedColumn lays n entries of col j out in a row-major n×cols table of
// values and returns the table plus the strided view of column j.
func stridedColumn(n, cols, j int, values []float64) ([]float64, blas64.Vector) {
	table := make([]float64, n*cols)
	for i := 0; i < n; i++ {
		table[i*cols+j] = values[i]
	}

	return table, blas64.Vector{N: n, Data: table[j:], Inc: cols}
}

// randomValues returns n deterministic values in [-1, 1).
func randomValues(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = 2*rng.Float64() - 1
	}

	return out
}

// plainDot is the reference inner product.
func plainDot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

// mustSparse builds a sparse vector or fails the test.
func mustSparse(t testing.TB, dim int, idx []int, val []float64) *features.Sparse {
	t.Helper()
	s, err := features.NewSparse(dim, idx, val)
	require.NoError(t, err)

	return s
}

// mustDense builds a dense vector or fails the test.
func mustDense(t testing.TB, values []float64) *features.Dense {
	t.Helper()
	d, err := features.NewDense(values)
	require.NoError(t, err)

	return d
}
