// SPDX-License-Identifier: MIT

// Package optimize - RNG utilities for stochastic descent.
//
// Goals:
//   - Determinism: same seed ⇒ identical visiting order ⇒ identical θ.
//   - Encapsulation: one RNG factory; no time-based sources hidden anywhere.
//   - Eager order: each outer iteration materializes its full permutation
//     before any update runs.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each run owns its RNG.
package optimize

import "math/rand"

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// shuffleOrder resets order to 0..n-1 and applies a Fisher–Yates shuffle
// driven by rng, so each call yields a fresh uniform permutation that does not
// depend on the previous one.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleOrder(order []int, rng *rand.Rand) {
	var i, j int
	for i = range order {
		order[i] = i
	}
	for i = len(order) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
}
