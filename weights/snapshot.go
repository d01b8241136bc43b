// SPDX-License-Identifier: MIT

package weights

import (
	"fmt"
)

// Snapshot is the plain-data form of a Store: shape plus row-major values.
// It carries yaml and json tags so an external persistence layer can encode
// it directly.
type Snapshot struct {
	Rows int       `yaml:"rows" json:"rows"`
	Cols int       `yaml:"cols" json:"cols"`
	Data []float64 `yaml:"data" json:"data"` // len == Rows*Cols, offset i*Cols + j
}

// Snapshot copies the table out.
func (s *Store) Snapshot() Snapshot {
	r, c := s.m.Dims()
	out := Snapshot{Rows: r, Cols: c, Data: make([]float64, 0, r*c)}
	raw := s.m.RawMatrix()
	for i := 0; i < r; i++ {
		out.Data = append(out.Data, raw.Data[i*raw.Stride:i*raw.Stride+c]...)
	}

	return out
}

// Restore overwrites the table with snap. The shape must equal Shape().
//
// Errors: ErrDimensionMismatch for a shape or length mismatch, ErrNaNInf
// under the policy. The table is unchanged on error.
func (s *Store) Restore(snap Snapshot) error {
	r, c := s.m.Dims()
	if snap.Rows != r || snap.Cols != c {
		return fmt.Errorf("Store.%s: snapshot %dx%d, store %dx%d: %w", ctxRestore, snap.Rows, snap.Cols, r, c, ErrDimensionMismatch)
	}
	if len(snap.Data) != r*c {
		return fmt.Errorf("Store.%s: %d values for %dx%d: %w", ctxRestore, len(snap.Data), r, c, ErrDimensionMismatch)
	}
	if err := s.checkFinite(ctxRestore, snap.Data); err != nil {
		return err
	}
	raw := s.m.RawMatrix()
	for i := 0; i < r; i++ {
		copy(raw.Data[i*raw.Stride:i*raw.Stride+c], snap.Data[i*c:(i+1)*c])
	}

	return nil
}

// FromSnapshot builds a new Store from snap.
func FromSnapshot(snap Snapshot, opts ...Option) (*Store, error) {
	return NewFromValues(snap.Rows, snap.Cols, snap.Data, opts...)
}
