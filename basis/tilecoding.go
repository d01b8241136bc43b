// SPDX-License-Identifier: MIT

// Package basis - Tile Coding.
//
// Purpose:
//   - Produce exactly Tilings() active binary features per input, one per
//     tiling, regardless of input dimensionality.
//
// Scheme (fixed, weight rows depend on it):
//   - Scaled coordinate s_k = Unit(x_k) · tiles, so [lo,hi] ↦ [0,tiles].
//   - Tiling t is displaced by offsets[t][k] ∈ [0,1) tile widths. Default
//     offsets are the asymmetric scheme frac(t·(2k+1)/tilings); tiling 0 is
//     undisplaced. WithRandomOffsets draws them from the caller's generator.
//   - Tile coordinate q_k = ⌊s_k + offsets[t][k]⌋ ∈ [0, tiles], so every
//     tiling grid has tiles+1 cells per dimension.
//   - Unhashed: index = t·cells + IdxFor(q), cells = (tiles+1)^dim.
//   - Hashed:   index = t·part + TileHash(t,q) mod part, part = ⌊size/tilings⌋.
//     Partitions are disjoint, so the active indices are always unique;
//     collisions within one tiling's partition are accepted.
//
// Concurrency:
//   - Immutable after construction; Project is safe for concurrent use.

package basis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/lfa/features"
)

const ctxTileCoding = "TileCoding"

// TileCoding is a sparse binary basis over tilings offset grids.
type TileCoding struct {
	bounds  []Bounds
	tilings int
	tiles   int         // tiles per dimension
	offsets [][]float64 // [tiling][dim], tile units in [0,1)

	hashSize int // 0 ⇒ unhashed
	part     int // slots per tiling when hashed
	cells    int // cells per tiling when unhashed
	lens     []int
	dim      int
}

// NewTileCoding builds a tile coding with the given number of tilings and
// tiles per dimension over bounds.
//
// Errors:
//   - ErrInvalidConfiguration when tilings <= 0, tilesPerDim <= 0, bounds are
//     empty or malformed, the hash size is smaller than tilings, or an unhashed
//     table exceeds MaxTerms.
func NewTileCoding(tilings, tilesPerDim int, bounds []Bounds, opts ...Option) (*TileCoding, error) {
	o, err := gatherOptions(ctxTileCoding, opts, optHashing, optRandomOffsets)
	if err != nil {
		return nil, err
	}
	if tilings <= 0 {
		return nil, configErrorf(ctxTileCoding, "tilings %d <= 0", tilings)
	}
	if err = validateBounds(ctxTileCoding, bounds); err != nil {
		return nil, err
	}
	if o.used[optHashing] && o.hashSize <= 0 {
		return nil, configErrorf(ctxTileCoding, "hash size %d <= 0", o.hashSize)
	}

	offsets := make([][]float64, tilings)
	if o.randOffs {
		rng := rngOrDefault(o.offsetsRNG)
		for t := 1; t < tilings; t++ {
			offsets[t] = make([]float64, len(bounds))
			for k := range offsets[t] {
				offsets[t][k] = rng.Float64()
			}
		}
		offsets[0] = make([]float64, len(bounds))
	} else {
		for t := range offsets {
			offsets[t] = asymmetricOffsets(t, tilings, len(bounds))
		}
	}

	return newTileCoding(tilings, tilesPerDim, bounds, o.hashSize, offsets)
}

// asymmetricOffsets returns frac(t·(2k+1)/tilings) for k = 0..dim-1.
func asymmetricOffsets(t, tilings, dim int) []float64 {
	out := make([]float64, dim)
	for k := range out {
		v := float64(t*(2*k+1)) / float64(tilings)
		out[k] = v - math.Floor(v)
	}

	return out
}

// newTileCoding is the shared tail of NewTileCoding and Build.
func newTileCoding(tilings, tiles int, bounds []Bounds, hashSize int, offsets [][]float64) (*TileCoding, error) {
	if tilings <= 0 {
		return nil, configErrorf(ctxTileCoding, "tilings %d <= 0", tilings)
	}
	if tiles <= 0 {
		return nil, configErrorf(ctxTileCoding, "tiles per dimension %d <= 0", tiles)
	}
	if err := validateBounds(ctxTileCoding, bounds); err != nil {
		return nil, err
	}
	if len(offsets) != tilings {
		return nil, configErrorf(ctxTileCoding, "%d offset rows for %d tilings", len(offsets), tilings)
	}
	offs := make([][]float64, tilings)
	for t, row := range offsets {
		if len(row) != len(bounds) {
			return nil, configErrorf(ctxTileCoding, "offset row %d has %d entries, want %d", t, len(row), len(bounds))
		}
		for _, v := range row {
			if !(v >= 0 && v < 1) {
				return nil, configErrorf(ctxTileCoding, "offset %g outside [0,1)", v)
			}
		}
		offs[t] = append([]float64(nil), row...)
	}

	tc := &TileCoding{
		bounds:   copyBounds(bounds),
		tilings:  tilings,
		tiles:    tiles,
		offsets:  offs,
		hashSize: hashSize,
		lens:     make([]int, len(bounds)),
	}
	for k := range tc.lens {
		tc.lens[k] = tiles + 1
	}

	if hashSize > 0 {
		if hashSize < tilings {
			return nil, configErrorf(ctxTileCoding, "hash size %d < tilings %d", hashSize, tilings)
		}
		tc.part = hashSize / tilings
		tc.dim = hashSize
		return tc, nil
	}

	cells, ok := gridSize(tiles, len(bounds))
	if !ok || cells > MaxTerms/tilings {
		return nil, configErrorf(ctxTileCoding, "unhashed table exceeds %d entries; use WithHashing", MaxTerms)
	}
	tc.cells = cells
	tc.dim = tilings * cells

	return tc, nil
}

func (tc *TileCoding) sealed() {}

// InputDim returns len(bounds).
func (tc *TileCoding) InputDim() int { return len(tc.bounds) }

// Dim returns the table size: the hash size when hashed, tilings·cells
// otherwise.
func (tc *TileCoding) Dim() int { return tc.dim }

// IsSparse is true.
func (tc *TileCoding) IsSparse() bool { return true }

// Tilings returns the number of tilings, i.e. the active count per projection.
func (tc *TileCoding) Tilings() int { return tc.tilings }

// Hashed reports whether a hashing table bounds the dimension.
func (tc *TileCoding) Hashed() bool { return tc.hashSize > 0 }

// Project returns the Tilings() active tiles for x.
//
// Errors: *features.DimensionError, ErrNaNInf, ErrOutOfBounds.
// Complexity: O(Tilings·InputDim).
func (tc *TileCoding) Project(x []float64) (features.Vector, error) {
	if err := checkInput(ctxTileCoding, len(tc.bounds), x); err != nil {
		return nil, err
	}
	s := make([]float64, len(x))
	for k, v := range x {
		b := tc.bounds[k]
		if !b.Contains(v) {
			return nil, fmt.Errorf("%s.Project: x[%d]=%g outside [%g,%g]: %w", ctxTileCoding, k, v, b.Lo, b.Hi, ErrOutOfBounds)
		}
		s[k] = b.Unit(v) * float64(tc.tiles)
	}

	q := make([]int, len(x))
	idx := make([]int, tc.tilings)
	var buf []byte
	if tc.hashSize > 0 {
		buf = make([]byte, 8*(len(q)+1))
	}
	for t := 0; t < tc.tilings; t++ {
		tc.coords(t, s, q)
		if tc.hashSize > 0 {
			idx[t] = hashSlot(hashTile(buf, t, q), t, tc.part)
			continue
		}
		idx[t] = t*tc.cells + combin.IdxFor(q, tc.lens)
	}

	return features.WrapBinarySparse(tc.dim, idx)
}

// coords writes tiling t's tile coordinates for scaled point s into q.
func (tc *TileCoding) coords(t int, s []float64, q []int) {
	off := tc.offsets[t]
	for k, v := range s {
		c := int(math.Floor(v + off[k]))
		// v == tiles with an offset within one ulp of 1 can round up
		if c > tc.tiles {
			c = tc.tiles
		}
		q[k] = c
	}
}

// Config returns the plain-data description with explicit offsets.
func (tc *TileCoding) Config() Config {
	offs := make([][]float64, len(tc.offsets))
	for t, row := range tc.offsets {
		offs[t] = append([]float64(nil), row...)
	}

	return Config{
		Kind:        KindTileCoding,
		InputDim:    len(tc.bounds),
		Bounds:      copyBounds(tc.bounds),
		Tilings:     tc.tilings,
		TilesPerDim: tc.tiles,
		HashSize:    tc.hashSize,
		Offsets:     offs,
	}
}
