// SPDX-License-Identifier: MIT

// Package weights holds the tunable table W of a linear approximator.
//
// W has one row per basis feature and one column per output. A prediction for
// column j is the inner product of a feature vector with W[:, j]; an update
// adds delta times the feature vector into that column, touching only rows
// the feature vector actually stores. Sparse tile codings therefore update in
// O(tilings) regardless of table size.
//
// The table is a gonum *mat.Dense. Columns are handed to the feature layer as
// strided blas64.Vector views, so no column is ever copied on the hot path.
//
// Numeric policy follows DefaultValidateNaNInf: non-finite values and deltas
// are rejected with ErrNaNInf before any write. Snapshot and Restore expose
// the table as plain data for external persistence.
//
// A Store has no internal locking. Callers sharing one across goroutines
// provide their own synchronisation.
package weights
