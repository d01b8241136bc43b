// Package features is the dual dense/sparse feature representation consumed
// by every basis and weight store in lfa.
//
// A feature vector is the projection of one input point through a basis. It
// is either:
//
//   - Dense:  every position 0..N-1 is stored, zeros included.
//   - Sparse: only the active positions are stored (unique indices in [0,N)),
//     optionally with a value each; absent values mean activation 1.
//
// Both representations implement Vector, and every numeric contract (Dot,
// AddScaledTo, Each, Expanded) gives the same result for the same logical
// vector. Callers program against Vector; the representation only changes
// cost:
//
//	Dot / AddScaledTo:   Dense O(N) via gonum blas64, Sparse O(active)
//	Expanded:            O(N) allocation, diagnostics only
//
// Weight columns are passed as gonum blas64.Vector so a column of a
// row-major table can be addressed in place through its stride.
//
//	f, err := features.NewBinarySparse(1024, []int{3, 517, 900})
//	v, err := f.Dot(col) // col.N must equal 1024
package features
