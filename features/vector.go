// SPDX-License-Identifier: MIT

// Package features - Vector capability and representation-independent helpers.
//
// Purpose:
//   - Define the single interface every call site programs against.
//   - Provide the two combinator kernels (Concat, Scaled) bases need to
//     compose outputs without knowing their operands' representations.
//
// Determinism:
//   - No map iteration anywhere; Each visits positions in stored order.

package features

import (
	"math"

	"gonum.org/v1/gonum/blas/blas64"
)

// Vector is the projection of one input point through a basis.
//
// Dot and AddScaledTo must address only the positions the representation
// stores, so sparse vectors cost O(active) on the hot path.
type Vector interface {
	// Dim returns the declared dimension N.
	Dim() int

	// IsSparse reports the representation. Only combinators need it.
	IsSparse() bool

	// NNZ returns the number of stored activations.
	NNZ() int

	// Dot returns Σ activation[i]·col[i].
	// Errors: *DimensionError when col.N != Dim().
	Dot(col blas64.Vector) (float64, error)

	// AddScaledTo performs col[i] += alpha·activation[i] in place.
	// Errors: *DimensionError when col.N != Dim().
	AddScaledTo(col blas64.Vector, alpha float64) error

	// Each calls fn for every stored position.
	Each(fn func(i int, v float64))

	// Expanded returns a fresh dense copy of length Dim().
	Expanded() []float64
}

// Compile-time conformance.
var (
	_ Vector = (*Dense)(nil)
	_ Vector = (*Sparse)(nil)
)

// checkColumn validates that col addresses exactly n entries.
func checkColumn(op string, n int, col blas64.Vector) error {
	if col.N != n {
		return MismatchError(op, n, col.N)
	}

	return nil
}

// Concat joins a and b into a vector of dimension a.Dim()+b.Dim() with b's
// positions offset by a.Dim().
//
// The result is sparse only when both operands are sparse; any dense operand
// forces a dense result because a mixed union has no lossless sparse form.
// Complexity: O(a.NNZ()+b.NNZ()) sparse, O(a.Dim()+b.Dim()) dense.
func Concat(a, b Vector) (Vector, error) {
	if a == nil || b == nil {
		return nil, ErrInvalidDimension
	}
	da, db := a.Dim(), b.Dim()

	sa, okA := a.(*Sparse)
	sb, okB := b.(*Sparse)
	if okA && okB {
		idx := make([]int, 0, sa.NNZ()+sb.NNZ())
		idx = append(idx, sa.idx...)
		for _, i := range sb.idx {
			idx = append(idx, i+da)
		}
		// Binary on both sides stays binary.
		if sa.val == nil && sb.val == nil {
			return &Sparse{dim: da + db, idx: idx}, nil
		}
		val := make([]float64, 0, len(idx))
		val = appendValues(val, sa)
		val = appendValues(val, sb)

		return &Sparse{dim: da + db, idx: idx, val: val}, nil
	}

	out := make([]float64, da+db)
	a.Each(func(i int, v float64) { out[i] = v })
	b.Each(func(i int, v float64) { out[da+i] = v })

	return &Dense{data: out}, nil
}

// appendValues appends the explicit values of s, expanding binary sparse
// vectors to ones.
func appendValues(dst []float64, s *Sparse) []float64 {
	if s.val != nil {
		return append(dst, s.val...)
	}
	for range s.idx {
		dst = append(dst, 1)
	}

	return dst
}

// Scaled returns a copy of v with every activation multiplied by c, keeping
// v's representation and dimension. Binary sparse input gains explicit values.
// Complexity: O(v.NNZ()).
func Scaled(v Vector, c float64) Vector {
	switch x := v.(type) {
	case *Sparse:
		val := make([]float64, len(x.idx))
		for k := range x.idx {
			val[k] = c * x.value(k)
		}
		idx := make([]int, len(x.idx))
		copy(idx, x.idx)

		return &Sparse{dim: x.dim, idx: idx, val: val}
	case *Dense:
		out := make([]float64, len(x.data))
		for i, a := range x.data {
			out[i] = c * a
		}

		return &Dense{data: out}
	default:
		out := v.Expanded()
		for i := range out {
			out[i] *= c
		}

		return &Dense{data: out}
	}
}

// Equal reports whether a and b hold the same logical activations within tol,
// regardless of representation. Vectors of different Dim are never equal.
// Complexity: O(Dim).
func Equal(a, b Vector, tol float64) bool {
	if a.Dim() != b.Dim() {
		return false
	}
	xa, xb := a.Expanded(), b.Expanded()
	for i := range xa {
		if math.Abs(xa[i]-xb[i]) > tol {
			return false
		}
	}

	return true
}

// Identical reports exact equality of representation and stored content.
// Used for determinism checks where tolerance would hide drift.
func Identical(a, b Vector) bool {
	if a.Dim() != b.Dim() || a.IsSparse() != b.IsSparse() || a.NNZ() != b.NNZ() {
		return false
	}
	var ia, ib []int
	var va, vb []float64
	a.Each(func(i int, v float64) { ia = append(ia, i); va = append(va, v) })
	b.Each(func(i int, v float64) { ib = append(ib, i); vb = append(vb, v) })
	for k := range ia {
		if ia[k] != ib[k] || va[k] != vb[k] {
			return false
		}
	}

	return true
}
