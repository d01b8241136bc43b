// SPDX-License-Identifier: MIT

// Package basis: functional configuration for basis constructors.
// This file defines:
//   - Option (functional options with internal state),
//   - WithX constructors,
//   - gatherOptions, which rejects options a constructor does not consume.
//
// Design goals:
//   - No dead switches: an option passed to a constructor that ignores it is
//     an ErrInvalidConfiguration, not a silent no-op.
//   - Reproducibility: randomised structure only ever comes from a
//     caller-supplied *rand.Rand (nil ⇒ the fixed default stream, see rng.go).
package basis

import (
	"math/rand"
	"sort"
	"strings"
)

// option names, used for applicability checks and error messages
const (
	optBounds        = "WithBounds"
	optRandomSubset  = "WithRandomSubset"
	optHashing       = "WithHashing"
	optRandomOffsets = "WithRandomOffsets"
)

// Option mutates constructor options.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	bounds []Bounds // Polynomial input rescaling

	subset    int        // Fourier: number of coefficient vectors kept (0 = all)
	subsetRNG *rand.Rand // Fourier: subset source

	hashSize   int        // TileCoding: table size (0 = unhashed)
	offsetsRNG *rand.Rand // TileCoding: offset source
	randOffs   bool       // TileCoding: random rather than asymmetric offsets

	used map[string]bool
}

func (o *options) mark(name string) {
	if o.used == nil {
		o.used = make(map[string]bool)
	}
	o.used[name] = true
}

// WithBounds rescales each Polynomial input coordinate from its interval onto
// [-1, 1] before the terms are evaluated.
func WithBounds(bounds []Bounds) Option {
	cp := copyBounds(bounds)
	return func(o *options) {
		o.bounds = cp
		o.mark(optBounds)
	}
}

// WithRandomSubset keeps k Fourier coefficient vectors drawn from rng instead
// of the full grid. The zero vector is always kept.
func WithRandomSubset(k int, rng *rand.Rand) Option {
	return func(o *options) {
		o.subset = k
		o.subsetRNG = rng
		o.mark(optRandomSubset)
	}
}

// WithHashing folds tile coordinates through TileHash into a table of size
// slots, bounding memory regardless of input dimensionality.
func WithHashing(size int) Option {
	return func(o *options) {
		o.hashSize = size
		o.mark(optHashing)
	}
}

// WithRandomOffsets draws each tiling's displacement from rng instead of the
// deterministic asymmetric scheme.
func WithRandomOffsets(rng *rand.Rand) Option {
	return func(o *options) {
		o.offsetsRNG = rng
		o.randOffs = true
		o.mark(optRandomOffsets)
	}
}

// gatherOptions applies opts and rejects any option outside allowed.
func gatherOptions(ctor string, opts []Option, allowed ...string) (options, error) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	ok := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		ok[a] = true
	}
	var bad []string
	for name := range o.used {
		if !ok[name] {
			bad = append(bad, name)
		}
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		return o, configErrorf(ctor, "option(s) %s not applicable", strings.Join(bad, ", "))
	}

	return o, nil
}
