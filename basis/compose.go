// SPDX-License-Identifier: MIT

// Package basis - combinators.
//
// Invariants:
//   - Stack(A,B).Dim() == A.Dim()+B.Dim(); the first A.Dim() positions of a
//     stacked projection equal A's projection.
//   - Stack output is sparse iff both operands are sparse.
//   - Stacking is associative in output: Stack(Stack(A,B),C) and
//     Stack(A,Stack(B,C)) project identically.
//   - Scale keeps dimension and representation.

package basis

import (
	"github.com/katalvlaran/lfa/features"
)

const (
	ctxStack = "Stack"
	ctxScale = "Scale"
)

// Stacked concatenates the outputs of two bases over the same input.
type Stacked struct {
	a, b  Basis
	inDim int
}

// Stack returns the concatenation of a and b.
//
// Errors:
//   - ErrInvalidConfiguration when either operand is nil.
//   - *features.DimensionError when both operands fix an input dimension and
//     they disagree.
func Stack(a, b Basis) (*Stacked, error) {
	if a == nil || b == nil {
		return nil, configErrorf(ctxStack, "nil operand")
	}
	in := a.InputDim()
	switch {
	case in == AnyInput:
		in = b.InputDim()
	case b.InputDim() != AnyInput && b.InputDim() != in:
		return nil, features.MismatchError(ctxStack, in, b.InputDim())
	}

	return &Stacked{a: a, b: b, inDim: in}, nil
}

// StackAll folds bs from the left: Stack(Stack(bs[0], bs[1]), bs[2])…
// A single basis is returned unchanged.
func StackAll(bs ...Basis) (Basis, error) {
	if len(bs) == 0 {
		return nil, configErrorf(ctxStack, "no operands")
	}
	acc := bs[0]
	for _, b := range bs[1:] {
		s, err := Stack(acc, b)
		if err != nil {
			return nil, err
		}
		acc = s
	}
	if acc == nil {
		return nil, configErrorf(ctxStack, "nil operand")
	}

	return acc, nil
}

// WithConstant stacks a single constant-one feature after b.
func WithConstant(b Basis) (*Stacked, error) {
	one, err := Ones(1)
	if err != nil {
		return nil, err
	}

	return Stack(b, one)
}

func (s *Stacked) sealed() {}

// InputDim returns the operands' common input dimension (AnyInput when both
// are constant).
func (s *Stacked) InputDim() int { return s.inDim }

// Dim returns a.Dim()+b.Dim().
func (s *Stacked) Dim() int { return s.a.Dim() + s.b.Dim() }

// IsSparse is the logical AND of the operands' sparsity.
func (s *Stacked) IsSparse() bool { return s.a.IsSparse() && s.b.IsSparse() }

// Operands returns the two stacked bases.
func (s *Stacked) Operands() (Basis, Basis) { return s.a, s.b }

// Project projects x through both operands and concatenates the results.
func (s *Stacked) Project(x []float64) (features.Vector, error) {
	if err := checkInput(ctxStack, s.inDim, x); err != nil {
		return nil, err
	}
	fa, err := s.a.Project(x)
	if err != nil {
		return nil, err
	}
	fb, err := s.b.Project(x)
	if err != nil {
		return nil, err
	}

	return features.Concat(fa, fb)
}

// Config returns the plain-data description with both operands as children.
func (s *Stacked) Config() Config {
	return Config{
		Kind:     KindStack,
		InputDim: s.inDim,
		Children: []Config{s.a.Config(), s.b.Config()},
	}
}

// Scaled multiplies every activation of an inner basis by a constant.
type Scaled struct {
	inner Basis
	c     float64
}

// Scale returns b with activations multiplied by c.
// Errors: ErrInvalidConfiguration when b is nil or c is not finite.
func Scale(b Basis, c float64) (*Scaled, error) {
	if b == nil {
		return nil, configErrorf(ctxScale, "nil operand")
	}
	if !finite(c) {
		return nil, configErrorf(ctxScale, "factor %g is not finite", c)
	}

	return &Scaled{inner: b, c: c}, nil
}

func (s *Scaled) sealed() {}

// InputDim returns the inner basis' input dimension.
func (s *Scaled) InputDim() int { return s.inner.InputDim() }

// Dim returns the inner basis' dimension.
func (s *Scaled) Dim() int { return s.inner.Dim() }

// IsSparse returns the inner basis' sparsity.
func (s *Scaled) IsSparse() bool { return s.inner.IsSparse() }

// Factor returns the multiplier.
func (s *Scaled) Factor() float64 { return s.c }

// Project scales the inner projection.
func (s *Scaled) Project(x []float64) (features.Vector, error) {
	f, err := s.inner.Project(x)
	if err != nil {
		return nil, err
	}

	return features.Scaled(f, s.c), nil
}

// Config returns the plain-data description with the inner basis as child.
func (s *Scaled) Config() Config {
	return Config{
		Kind:     KindScale,
		InputDim: s.inner.InputDim(),
		Value:    s.c,
		Children: []Config{s.inner.Config()},
	}
}
