// SPDX-License-Identifier: MIT

package basis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lfa/basis"
	"github.com/katalvlaran/lfa/features"
)

// TestStack_Prefix checks the left operand fills the prefix and the right
// operand the suffix.
func TestStack_Prefix(t *testing.T) {
	t.Parallel()

	poly, err := basis.NewPolynomial(2, 2)
	require.NoError(t, err)
	four, err := basis.NewFourier(1, domain2)
	require.NoError(t, err)
	s, err := basis.Stack(poly, four)
	require.NoError(t, err)
	require.Equal(t, poly.Dim()+four.Dim(), s.Dim())
	assert.False(t, s.IsSparse())

	for _, x := range samples2 {
		got := mustProject(t, s, x)
		assert.Equal(t, mustProject(t, poly, x), got[:poly.Dim()])
		assert.Equal(t, mustProject(t, four, x), got[poly.Dim():])
	}
}

// TestStack_Sparsity is sparse only when both operands are.
func TestStack_Sparsity(t *testing.T) {
	t.Parallel()

	a, err := basis.NewTileCoding(2, 3, domain2)
	require.NoError(t, err)
	b, err := basis.NewTileCoding(3, 2, domain2, basis.WithHashing(30))
	require.NoError(t, err)
	d, err := basis.NewFourier(1, domain2)
	require.NoError(t, err)

	ss, err := basis.Stack(a, b)
	require.NoError(t, err)
	assert.True(t, ss.IsSparse())
	f, err := ss.Project([]float64{0.1, 0.2})
	require.NoError(t, err)
	sp, ok := f.(*features.Sparse)
	require.True(t, ok)
	assert.True(t, sp.IsBinary())
	assert.Equal(t, 5, sp.NNZ())
	for _, i := range sp.Indices()[2:] {
		assert.GreaterOrEqual(t, i, a.Dim(), "right operand indices are shifted")
	}

	sd, err := basis.Stack(a, d)
	require.NoError(t, err)
	assert.False(t, sd.IsSparse())
	ds, err := basis.Stack(d, a)
	require.NoError(t, err)
	assert.False(t, ds.IsSparse())
}

// TestStack_Associative: (A|B)|C and A|(B|C) project identically.
func TestStack_Associative(t *testing.T) {
	t.Parallel()

	a, err := basis.NewTileCoding(2, 3, domain2)
	require.NoError(t, err)
	b, err := basis.NewTileCoding(2, 2, domain2, basis.WithHashing(16))
	require.NoError(t, err)
	c, err := basis.NewPolynomial(1, 2)
	require.NoError(t, err)

	ab, err := basis.Stack(a, b)
	require.NoError(t, err)
	left, err := basis.Stack(ab, c)
	require.NoError(t, err)
	bc, err := basis.Stack(b, c)
	require.NoError(t, err)
	right, err := basis.Stack(a, bc)
	require.NoError(t, err)

	for _, x := range samples2 {
		fl, err := left.Project(x)
		require.NoError(t, err)
		fr, err := right.Project(x)
		require.NoError(t, err)
		assert.True(t, features.Identical(fl, fr))
	}
}

// TestStack_InputMismatch rejects operands over different input lengths.
func TestStack_InputMismatch(t *testing.T) {
	t.Parallel()

	a, err := basis.NewPolynomial(1, 2)
	require.NoError(t, err)
	b, err := basis.NewPolynomial(1, 3)
	require.NoError(t, err)

	_, err = basis.Stack(a, b)
	assert.ErrorIs(t, err, basis.ErrDimensionMismatch)
	_, err = basis.Stack(a, nil)
	assert.ErrorIs(t, err, basis.ErrInvalidConfiguration)
	_, err = basis.StackAll()
	assert.ErrorIs(t, err, basis.ErrInvalidConfiguration)
}

// TestStack_ConstantAdoptsInput lets a constant operand take either side.
func TestStack_ConstantAdoptsInput(t *testing.T) {
	t.Parallel()

	one, err := basis.Ones(2)
	require.NoError(t, err)
	p, err := basis.NewPolynomial(1, 2)
	require.NoError(t, err)

	s, err := basis.Stack(one, p)
	require.NoError(t, err)
	assert.Equal(t, 2, s.InputDim())
	assert.Equal(t, []float64{1, 1, 1, 5, 4}, mustProject(t, s, []float64{4, 5}))

	w, err := basis.WithConstant(p)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 5, 4, 1}, mustProject(t, w, []float64{4, 5}))
}

// TestScale multiplies activations and keeps the representation.
func TestScale(t *testing.T) {
	t.Parallel()

	tc, err := basis.NewTileCoding(3, 4, domain2)
	require.NoError(t, err)
	s, err := basis.Scale(tc, 0.25)
	require.NoError(t, err)
	assert.True(t, s.IsSparse())
	assert.Equal(t, tc.Dim(), s.Dim())
	assert.InDelta(t, 0.25, s.Factor(), tol)

	for _, x := range samples2 {
		base := mustProject(t, tc, x)
		got := mustProject(t, s, x)
		for i := range base {
			assert.InDelta(t, 0.25*base[i], got[i], tol)
		}
	}

	z, err := basis.Scale(tc, 0)
	require.NoError(t, err)
	f, err := z.Project([]float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 3, f.NNZ(), "zero factor keeps the active set")

	_, err = basis.Scale(nil, 1)
	assert.ErrorIs(t, err, basis.ErrInvalidConfiguration)
}
