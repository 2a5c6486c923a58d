package systems

import "github.com/pthm-cable/daisyworld/components"

// MutateAlbedo draws an offspring albedo uniformly from
// [max(AlbedoMin, a-r), min(AlbedoMax, a+r)].
func MutateAlbedo(rng Rand, albedo, mutationRange float64) float64 {
	lo := max(components.AlbedoMin, albedo-mutationRange)
	hi := min(components.AlbedoMax, albedo+mutationRange)
	return components.ClampAlbedo(Uniform(rng, lo, hi))
}

// RandomAlbedo draws a founder albedo uniformly from the full range.
func RandomAlbedo(rng Rand) float64 {
	return Uniform(rng, components.AlbedoMin, components.AlbedoMax)
}
