// Package rng wraps math/rand/v2 for deterministic seeding. PCG is a
// counter-based generator, so identical seeds produce identical streams
// on every platform.
package rng

import "math/rand/v2"

// RNG is a thin convenience wrapper around a seeded rand.Rand.
type RNG struct {
	r *rand.Rand
}

// New creates a deterministic RNG using the provided seed.
func New(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a uniform int in [0, n). n must be positive.
func (r *RNG) IntN(n int) int {
	return r.r.IntN(n)
}

// Between returns a uniform int in [lo, hi] inclusive. Degenerate ranges
// collapse to lo.
func (r *RNG) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
