// SPDX-License-Identifier: MIT
// Package basis_test contains test helpers
//
// Purpose:
//   • Provide one deterministic catalogue of bases over a shared 2-D domain
//     so property tests run against every variant and combinator.

package basis_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lfa/basis"
)

const tol = 1e-12

// domain2 is the shared 2-D domain.
var domain2 = []basis.Bounds{{Lo: -1, Hi: 1}, {Lo: 0, Hi: 2}}

// samples2 are points inside domain2, corners included.
var samples2 = [][]float64{
	{-1, 0}, {1, 2}, {0, 1}, {0.25, 0.3}, {-0.9, 1.99}, {0.999, 0.001},
}

type namedBasis struct {
	name string
	b    basis.Basis
}

// catalogue builds every variant over domain2.
func catalogue(t testing.TB) []namedBasis {
	t.Helper()

	poly, err := basis.NewPolynomial(3, 2, basis.WithBounds(domain2))
	require.NoError(t, err)
	four, err := basis.NewFourier(2, domain2)
	require.NoError(t, err)
	fourSub, err := basis.NewFourier(3, domain2, basis.WithRandomSubset(5, rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	rbf, err := basis.NewRBFGrid(domain2, 4)
	require.NoError(t, err)
	tile, err := basis.NewTileCoding(4, 5, domain2)
	require.NoError(t, err)
	hashed, err := basis.NewTileCoding(8, 10, domain2, basis.WithHashing(256),
		basis.WithRandomOffsets(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	withConst, err := basis.WithConstant(poly)
	require.NoError(t, err)
	sparseStack, err := basis.Stack(tile, hashed)
	require.NoError(t, err)
	mixedStack, err := basis.Stack(tile, four)
	require.NoError(t, err)
	scaled, err := basis.Scale(hashed, 0.5)
	require.NoError(t, err)

	return []namedBasis{
		{"polynomial", poly},
		{"fourier", four},
		{"fourier_subset", fourSub},
		{"rbf_grid", rbf},
		{"tile", tile},
		{"tile_hashed", hashed},
		{"with_constant", withConst},
		{"stack_sparse", sparseStack},
		{"stack_mixed", mixedStack},
		{"scale", scaled},
	}
}

// mustProject projects x or fails the test.
func mustProject(t testing.TB, b basis.Basis, x []float64) []float64 {
	t.Helper()
	f, err := b.Project(x)
	require.NoError(t, err)

	return f.Expanded()
}
