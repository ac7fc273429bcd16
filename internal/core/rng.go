package core

import "math/rand"

// RNG supplies uniform random integers to the simulation.
type RNG interface {
	// IntRange returns a uniform integer in [a, b] inclusive.
	IntRange(a, b int) int
}

// Rand is the default RNG backed by math/rand with an explicit seed.
type Rand struct {
	r *rand.Rand
}

// NewRand creates a seeded RNG. The same seed yields the same sequence.
func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// IntRange returns a uniform integer in [a, b]. Swapped bounds are accepted.
func (r *Rand) IntRange(a, b int) int {
	if b < a {
		a, b = b, a
	}
	return a + r.r.Intn(b-a+1)
}
