// SPDX-License-Identifier: MIT

package basis_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lfa/basis"
	"github.com/katalvlaran/lfa/features"
)

// TestProject_LengthMatchesDim checks every projection has exactly Dim()
// positions and the declared representation.
func TestProject_LengthMatchesDim(t *testing.T) {
	t.Parallel()

	for _, nb := range catalogue(t) {
		t.Run(nb.name, func(t *testing.T) {
			for _, x := range samples2 {
				f, err := nb.b.Project(x)
				require.NoError(t, err)
				assert.Equal(t, nb.b.Dim(), f.Dim())
				assert.Len(t, f.Expanded(), nb.b.Dim())
				assert.Equal(t, nb.b.IsSparse(), f.IsSparse())
			}
		})
	}
}

// TestProject_Deterministic checks repeated projections are identical.
func TestProject_Deterministic(t *testing.T) {
	t.Parallel()

	for _, nb := range catalogue(t) {
		t.Run(nb.name, func(t *testing.T) {
			for _, x := range samples2 {
				a, err := nb.b.Project(x)
				require.NoError(t, err)
				b, err := nb.b.Project(x)
				require.NoError(t, err)
				assert.True(t, features.Identical(a, b))
			}
		})
	}
}

// TestProject_DimensionMismatch projects a 3-D point through 2-D bases.
func TestProject_DimensionMismatch(t *testing.T) {
	t.Parallel()

	for _, nb := range catalogue(t) {
		t.Run(nb.name, func(t *testing.T) {
			_, err := nb.b.Project([]float64{0, 1, 0.5})
			require.ErrorIs(t, err, basis.ErrDimensionMismatch)

			var de *features.DimensionError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, 2, de.Expected)
			assert.Equal(t, 3, de.Actual)
		})
	}
}

// TestProject_NonFinite rejects NaN and Inf coordinates.
func TestProject_NonFinite(t *testing.T) {
	t.Parallel()

	for _, nb := range catalogue(t) {
		_, err := nb.b.Project([]float64{math.NaN(), 1})
		assert.ErrorIs(t, err, basis.ErrNaNInf, nb.name)
		_, err = nb.b.Project([]float64{0, math.Inf(-1)})
		assert.ErrorIs(t, err, basis.ErrNaNInf, nb.name)
	}
}

// TestBounds_Validation covers malformed domains.
func TestBounds_Validation(t *testing.T) {
	t.Parallel()

	for _, bad := range [][]basis.Bounds{
		nil,
		{{Lo: 1, Hi: 1}},
		{{Lo: 2, Hi: 1}},
		{{Lo: math.Inf(-1), Hi: 0}},
		{{Lo: 0, Hi: math.NaN()}},
	} {
		_, err := basis.NewFourier(1, bad)
		assert.ErrorIs(t, err, basis.ErrInvalidConfiguration)
		_, err = basis.NewTileCoding(2, 2, bad)
		assert.ErrorIs(t, err, basis.ErrInvalidConfiguration)
		_, err = basis.NewRBFGrid(bad, 2)
		assert.ErrorIs(t, err, basis.ErrInvalidConfiguration)
	}
}

// TestOptions_NotApplicable rejects options a constructor ignores.
func TestOptions_NotApplicable(t *testing.T) {
	t.Parallel()

	_, err := basis.NewFourier(1, domain2, basis.WithHashing(64))
	assert.ErrorIs(t, err, basis.ErrInvalidConfiguration)

	_, err = basis.NewTileCoding(2, 2, domain2, basis.WithBounds(domain2))
	assert.ErrorIs(t, err, basis.ErrInvalidConfiguration)

	_, err = basis.NewPolynomial(1, 2, basis.WithRandomOffsets(nil))
	assert.ErrorIs(t, err, basis.ErrInvalidConfiguration)
}

// TestClampToBounds clamps only the bounded prefix.
func TestClampToBounds(t *testing.T) {
	t.Parallel()

	x := []float64{-3, 5, 9}
	got := basis.ClampToBounds(domain2, x)
	assert.Equal(t, []float64{-1, 2, 9}, got)
	assert.Equal(t, []float64{-3, 5, 9}, x, "input must not be modified")
}
