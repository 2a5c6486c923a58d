// Package components defines ECS components for the simulation.
package components

// Albedo bounds. Every daisy albedo stays inside [AlbedoMin, AlbedoMax].
const (
	AlbedoMin = 0.1
	AlbedoMax = 0.9
)

// Position is a cell coordinate on the torus.
type Position struct {
	X, Y int
}

// Daisy holds per-organism state.
// LifeSpan, TMin and TMax are fixed at birth.
type Daisy struct {
	Albedo   float64
	Age      int
	LifeSpan int
	TMin     float64
	TMax     float64
}

// ClampAlbedo forces a into [AlbedoMin, AlbedoMax].
func ClampAlbedo(a float64) float64 {
	if a < AlbedoMin {
		return AlbedoMin
	}
	if a > AlbedoMax {
		return AlbedoMax
	}
	return a
}

// Stressed reports whether heat lies outside the daisy's tolerated band.
func (d *Daisy) Stressed(heat float64) bool {
	return heat > d.TMax || heat < d.TMin
}

// PastLifeSpan reports whether the daisy has outlived its expectancy.
func (d *Daisy) PastLifeSpan() bool {
	return d.Age > d.LifeSpan
}

// Offspring returns a newborn with the parent's fixed traits and the given albedo.
func (d *Daisy) Offspring(albedo float64) Daisy {
	return Daisy{
		Albedo:   ClampAlbedo(albedo),
		LifeSpan: d.LifeSpan,
		TMin:     d.TMin,
		TMax:     d.TMax,
	}
}
