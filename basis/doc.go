// Package basis provides the fixed feature bases of lfa and their
// composition.
//
// Every basis maps an input point (a []float64 of length InputDim) to a
// features.Vector of length Dim, deterministically and without hidden state:
//
//	Polynomial  dense   monomials of total degree <= d
//	Fourier     dense   cos(π·c·u) over coefficient grid {0..n}^dim
//	RBFNetwork  dense   Gaussian bumps over fixed centres
//	TileCoding  sparse  exactly one active tile per tiling, optionally hashed
//	Constant    dense   bias features
//	Stack       A ⧺ B   sparse iff both operands are sparse
//	Scale       c·A     same representation as A
//
// Construction validates everything (ErrInvalidConfiguration); projection
// only fails on the input itself (*features.DimensionError, ErrNaNInf,
// ErrOutOfBounds). Randomised structure comes from a caller-supplied
// *rand.Rand and is fixed once the constructor returns.
//
// Config/Build expose any basis as plain data for external persistence.
//
//	tc, _ := basis.NewTileCoding(8, 10, []basis.Bounds{{-1.2, 0.6}, {-0.07, 0.07}},
//		basis.WithHashing(4096))
//	phi, err := tc.Project([]float64{-0.5, 0.01}) // 8 active indices
package basis
