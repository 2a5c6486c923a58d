package telemetry

import "gonum.org/v1/gonum/stat"

// Population returns the live daisy count.
func Population(s *Snapshot) int {
	return s.Population
}

// MeanAlbedo returns the arithmetic mean albedo.
// ok is false when there are no daisies.
func MeanAlbedo(s *Snapshot) (mean float64, ok bool) {
	if len(s.Daisies) == 0 {
		return 0, false
	}
	return stat.Mean(s.Albedos(), nil), true
}

// NorthSouthBalance counts daisies north of the equator row minus those south of it.
// Daisies on the equator row count for neither side.
func NorthSouthBalance(s *Snapshot) int {
	equator := float64(s.Height) / 2
	var north, south int
	for _, d := range s.Daisies {
		y := float64(d.Y)
		if y > equator {
			north++
		} else if y < equator {
			south++
		}
	}
	return north - south
}

// Irradiance returns the headline solar irradiance.
func Irradiance(s *Snapshot) float64 {
	return s.Luminosity
}
