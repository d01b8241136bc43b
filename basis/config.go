// SPDX-License-Identifier: MIT

// Package basis - plain-data configuration.
//
// Purpose:
//   - Expose every basis as nested records of numbers so an external
//     persistence layer can snapshot and restore it in any format.
//   - Record randomised structure (Fourier subsets, tile offsets) explicitly,
//     so Build never needs a generator and restores bit-identical bases.
//
// The struct carries yaml and json tags for convenience; this package never
// encodes or decodes anything itself.

package basis

// Kind names a basis variant in Config.
const (
	KindPolynomial = "polynomial"
	KindFourier    = "fourier"
	KindRBF        = "rbf"
	KindTileCoding = "tile_coding"
	KindConstant   = "constant"
	KindStack      = "stack"
	KindScale      = "scale"
)

const ctxBuild = "Build"

// Config describes a basis as plain data. Only the fields relevant to Kind
// are populated.
type Config struct {
	Kind     string `yaml:"kind" json:"kind"`
	InputDim int    `yaml:"input_dim" json:"input_dim"`

	Degree int      `yaml:"degree,omitempty" json:"degree,omitempty"` // polynomial
	Order  int      `yaml:"order,omitempty" json:"order,omitempty"`   // fourier
	Bounds []Bounds `yaml:"bounds,omitempty" json:"bounds,omitempty"`
	Terms  [][]int  `yaml:"terms,omitempty" json:"terms,omitempty"` // exponents or coefficients
	Size   int      `yaml:"size,omitempty" json:"size,omitempty"`   // constant
	Value  float64  `yaml:"value,omitempty" json:"value,omitempty"` // constant value, scale factor

	Centers [][]float64 `yaml:"centers,omitempty" json:"centers,omitempty"`
	Widths  []float64   `yaml:"widths,omitempty" json:"widths,omitempty"`

	Tilings     int         `yaml:"tilings,omitempty" json:"tilings,omitempty"`
	TilesPerDim int         `yaml:"tiles_per_dim,omitempty" json:"tiles_per_dim,omitempty"`
	HashSize    int         `yaml:"hash_size,omitempty" json:"hash_size,omitempty"`
	Offsets     [][]float64 `yaml:"offsets,omitempty" json:"offsets,omitempty"`

	Children []Config `yaml:"children,omitempty" json:"children,omitempty"`
}

// Build restores the basis described by cfg.
//
// Errors: ErrInvalidConfiguration for an unknown kind, a wrong child count,
// or any constructor error; *features.DimensionError for mismatched stack
// operands.
func Build(cfg Config) (Basis, error) {
	switch cfg.Kind {
	case KindPolynomial:
		if len(cfg.Terms) == 0 {
			var opts []Option
			if cfg.Bounds != nil {
				opts = append(opts, WithBounds(cfg.Bounds))
			}
			return asBasis(NewPolynomial(cfg.Degree, cfg.InputDim, opts...))
		}
		return asBasis(newPolynomial(cfg.Degree, cfg.InputDim, cfg.Bounds, cfg.Terms))

	case KindFourier:
		if len(cfg.Terms) == 0 {
			return asBasis(NewFourier(cfg.Order, cfg.Bounds))
		}
		return asBasis(newFourier(cfg.Order, cfg.Bounds, cfg.Terms))

	case KindRBF:
		return asBasis(NewRBFNetwork(cfg.Centers, cfg.Widths))

	case KindTileCoding:
		if len(cfg.Offsets) == 0 {
			var opts []Option
			if cfg.HashSize > 0 {
				opts = append(opts, WithHashing(cfg.HashSize))
			}
			return asBasis(NewTileCoding(cfg.Tilings, cfg.TilesPerDim, cfg.Bounds, opts...))
		}
		return asBasis(newTileCoding(cfg.Tilings, cfg.TilesPerDim, cfg.Bounds, cfg.HashSize, cfg.Offsets))

	case KindConstant:
		return asBasis(NewConstant(cfg.Size, cfg.Value))

	case KindStack:
		if len(cfg.Children) < 2 {
			return nil, configErrorf(ctxBuild, "stack needs >= 2 children, got %d", len(cfg.Children))
		}
		bs := make([]Basis, len(cfg.Children))
		for i, c := range cfg.Children {
			b, err := Build(c)
			if err != nil {
				return nil, err
			}
			bs[i] = b
		}
		return StackAll(bs...)

	case KindScale:
		if len(cfg.Children) != 1 {
			return nil, configErrorf(ctxBuild, "scale needs 1 child, got %d", len(cfg.Children))
		}
		inner, err := Build(cfg.Children[0])
		if err != nil {
			return nil, err
		}
		return asBasis(Scale(inner, cfg.Value))

	default:
		return nil, configErrorf(ctxBuild, "unknown kind %q", cfg.Kind)
	}
}

// asBasis drops the typed result on error so callers never receive a non-nil
// interface wrapping a nil pointer.
func asBasis(b Basis, err error) (Basis, error) {
	if err != nil {
		return nil, err
	}

	return b, nil
}
