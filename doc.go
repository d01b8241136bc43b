// Package lfa is a linear function approximation toolkit for reinforcement
// learning and online regression: project an input through a fixed basis,
// combine the features with a weight table, and update the weights from an
// error signal.
//
// What is inside
//
//	features/   dense and sparse feature vectors with Dot/AddScaledTo against
//	            strided weight columns (gonum blas64)
//	basis/      Polynomial, Fourier, RBF and Tile Coding bases; Stack, Scale
//	            and Constant combinators; plain-data Config and Build
//	weights/    the rows×arity weight table on gonum mat.Dense, with
//	            snapshot/restore
//	approx/     Scalar, Vector (and Pair) and Transformed approximators
//
// Data flow
//
//	x ──Project──▶ φ(x) ──·W[:,j]──▶ y_j
//	                 │
//	                 └──AddScaledTo(W[:,j], lr·err_j)── update
//
// Sparse tile codings keep exactly one active feature per tiling, so a
// prediction or update costs O(tilings) regardless of the table size.
//
// Quick example:
//
//	tc, _ := basis.NewTileCoding(8, 10, []basis.Bounds{{Lo: 0, Hi: 1}})
//	q, _ := approx.NewVector(tc, 2)
//	qs, _ := q.Predict([]float64{0.3})
//	_ = q.UpdateIndex([]float64{0.3}, 1, 1-qs[1], 0.1/8)
//
// Everything is synchronous and lock-free. Bases are immutable and safe to
// share; a weight table has one writer.
package lfa
