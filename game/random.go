package game

import (
	"math/rand/v2"
	"time"
)

// RandomSource is the uniform random source behind trajectories and mob variants.
// *rand.Rand satisfies it.
type RandomSource interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// NewRandomSource returns a PCG-backed source. A zero seed picks one from the clock.
func NewRandomSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func uniform(rng RandomSource, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
