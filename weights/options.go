// SPDX-License-Identifier: MIT

// Package weights - functional options for Store construction.
//
// Defaults are declared once below; gatherOptions applies user options in
// order, last writer wins.

package weights

// DefaultValidateNaNInf toggles strict finite-value validation on Set,
// NewFromValues, Restore, AddRaw and every update delta.
const DefaultValidateNaNInf = true

// Option configures a Store.
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported so the
// defaults above stay the single source of truth.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf rejects NaN/±Inf values and deltas with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-only policy. Non-finite values
// then propagate into predictions unchecked.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

func gatherOptions(user ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
