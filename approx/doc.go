// SPDX-License-Identifier: MIT

// Package approx combines a basis with the weight table it owns into a
// linear function approximator.
//
// Three shapes are provided:
//
//   - Scalar:      y = φ(x) · w
//   - Vector:      y_j = φ(x) · W[:, j], j < Arity(); NewPair for two outputs
//   - Transformed: y = g(φ(x) · w) for an output link g (Softplus, Logistic, Exp)
//
// Each call projects the input exactly once. Update methods take the
// caller's error signal and a learning rate and apply delta = lr · err to the
// touched weights; loss and target computation stay with the caller. The
// PredictAndUpdate helpers expose the prediction to a callback before the
// update so both halves share one projection, which dominates the cost for
// hashed tile codings.
//
// A failed projection, a wrong error-vector length or a non-finite delta
// leaves the weights untouched.
//
// Logging uses an injected zerolog.Logger (WithLogger); construction, weight
// restores and rejected updates are written at Debug level. Successful
// predictions and updates never log.
//
// An approximator is not safe for concurrent mutation. Use one per learner,
// or guard shared instances externally.
package approx
