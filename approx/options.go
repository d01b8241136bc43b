// SPDX-License-Identifier: MIT

package approx

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lfa/weights"
)

// Option configures an approximator.
type Option func(*options)

type options struct {
	initial    []float64 // row-major Dim()×Arity(); nil ⇒ zeros
	hasInitial bool
	logger     zerolog.Logger
	noValidate bool
}

// WithInitialWeights seeds the weight table with row-major values
// (row = feature, column = output). The slice is copied at construction.
// A length other than Dim()×Arity() fails with ErrDimensionMismatch.
func WithInitialWeights(values []float64) Option {
	return func(o *options) {
		o.initial = values
		o.hasInitial = true
	}
}

// WithLogger attaches a structured logger. Lifecycle events (construction,
// weight restore, rejected updates) are written at Debug level. Default is
// zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithNoValidateNaNInf disables the weight store's finite-only policy.
func WithNoValidateNaNInf() Option {
	return func(o *options) { o.noValidate = true }
}

func gatherOptions(user []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// storeOptions maps approximator options onto the weight store.
func (o options) storeOptions() []weights.Option {
	if o.noValidate {
		return []weights.Option{weights.WithNoValidateNaNInf()}
	}

	return []weights.Option{weights.WithValidateNaNInf()}
}
