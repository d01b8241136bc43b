// SPDX-License-Identifier: MIT

// Package approx - state shared by every approximator.
//
// An approximator is exactly a basis plus the weight store it owns. Every
// public operation projects its input once and reuses that feature vector for
// all columns; the store is written only after projection and all delta
// checks succeed.

package approx

import (
	"fmt"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lfa/basis"
	"github.com/katalvlaran/lfa/features"
	"github.com/katalvlaran/lfa/weights"
)

type core struct {
	basis basis.Basis
	store *weights.Store
	log   zerolog.Logger
}

func newCore(kind string, b basis.Basis, arity int, opts []Option) (core, error) {
	if b == nil {
		return core{}, fmt.Errorf("%s: %w", kind, ErrNilBasis)
	}
	if arity < 1 {
		return core{}, fmt.Errorf("%s: arity %d: %w", kind, arity, ErrInvalidArity)
	}
	o := gatherOptions(opts)

	var (
		st  *weights.Store
		err error
	)
	if o.hasInitial {
		st, err = weights.NewFromValues(b.Dim(), arity, o.initial, o.storeOptions()...)
	} else {
		st, err = weights.New(b.Dim(), arity, o.storeOptions()...)
	}
	if err != nil {
		return core{}, fmt.Errorf("%s: %w", kind, err)
	}

	log := o.logger.With().Str("approx", kind).Logger()
	log.Debug().
		Int("dim", b.Dim()).
		Int("arity", arity).
		Bool("sparse", b.IsSparse()).
		Bool("initial_weights", o.hasInitial).
		Msg("approximator constructed")

	return core{basis: b, store: st, log: log}, nil
}

// Basis returns the projection this approximator was built on.
func (c *core) Basis() basis.Basis { return c.basis }

// Dim returns the feature dimension, i.e. the weight table's row count.
func (c *core) Dim() int { return c.store.Rows() }

// Arity returns the number of outputs, i.e. the weight table's column count.
func (c *core) Arity() int { return c.store.Cols() }

// Project maps x through the basis. Use it with the *Features methods to
// share one projection across several calls.
func (c *core) Project(x []float64) (features.Vector, error) {
	return c.basis.Project(x)
}

// Weights returns a plain-data copy of the weight table.
func (c *core) Weights() weights.Snapshot { return c.store.Snapshot() }

// SetWeights overwrites the weight table from a snapshot of the same shape.
func (c *core) SetWeights(snap weights.Snapshot) error {
	if err := c.store.Restore(snap); err != nil {
		c.log.Debug().Err(err).Msg("weight restore rejected")
		return err
	}
	c.log.Debug().Int("rows", snap.Rows).Int("cols", snap.Cols).Msg("weights restored")

	return nil
}

// AddRaw adds delta (Dim()×Arity()) to the whole weight table.
func (c *core) AddRaw(delta mat.Matrix) error {
	if err := c.store.AddRaw(delta); err != nil {
		return c.rejected("AddRaw", err)
	}

	return nil
}

// rejected logs a refused write and hands err back.
func (c *core) rejected(op string, err error) error {
	c.log.Debug().Str("op", op).Err(err).Msg("update rejected")

	return err
}
