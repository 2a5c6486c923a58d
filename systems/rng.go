package systems

import "math/rand/v2"

// Rand is the source of every random decision in the simulation.
// Tests substitute deterministic implementations.
type Rand interface {
	Bool() bool
	Float64() float64
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// RNG is a thin wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a fair coin flip.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// IntN returns a value in [0, n).
func (r *RNG) IntN(n int) int {
	return r.r.IntN(n)
}

// Shuffle permutes n elements uniformly.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.r.Shuffle(n, swap)
}

// Uniform draws from [lo, hi). Returns lo when the interval is empty.
func Uniform(r Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + (hi-lo)*r.Float64()
}
