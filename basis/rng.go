// SPDX-License-Identifier: MIT

// Package basis - RNG policy shared by randomised constructors.
//
// Goals:
//   - Determinism: same caller seed ⇒ identical bases across runs.
//   - Encapsulation: no time-based sources anywhere; nil means the fixed
//     default stream, never "random".
//   - Randomness is consumed at construction only. Project never draws.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one *rand.Rand
//     across goroutines that construct bases concurrently.
package basis

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass a nil generator.
const defaultRNGSeed int64 = 1

// rngOrDefault returns rng, or a fresh deterministic stream when rng is nil.
//
// Complexity: O(1).
func rngOrDefault(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}

	return rand.New(rand.NewSource(defaultRNGSeed))
}
