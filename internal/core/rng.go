package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding. All randomness in a match (serves, AI error) flows through one
// instance so a seed reproduces the stream.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Between returns a uniform random float64 in [lo, hi).
func (r *RNG) Between(lo, hi float64) float64 {
	return lo + (hi-lo)*r.r.Float64()
}

// Direction returns -1 or +1 with equal probability.
func (r *RNG) Direction() float64 {
	if r.r.IntN(2) == 0 {
		return -1
	}
	return 1
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
