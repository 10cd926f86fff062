// Package mazegen - RNG utilities shared by all generators.
//
// This file centralizes random generation policy for the package.
//
// Goals:
//   - One source: every shuffle, pick, and walk draws from the carver's
//     single *rand.Rand; no time-based sources hidden in algorithm code.
//   - Reproducibility on demand: WithRand(rand.New(rand.NewSource(seed)))
//     yields identical structure across runs; the default is a freshly
//     seeded stream per call.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Concurrent generation is safe
//     only when each call owns its own source (the default) or callers
//     supply distinct sources via WithRand.
package mazegen

import (
	"math/rand"
	"time"
)

// newRNG returns the per-call random source: the caller-supplied one when
// present, otherwise a stream seeded from the wall clock.
// Complexity: O(1).
func newRNG(o Options) *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// shuffleWallsInPlace performs an in-place Fisher–Yates shuffle of a.
// Complexity: O(n) time, O(1) extra space.
func shuffleWallsInPlace(a []wallRef, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
