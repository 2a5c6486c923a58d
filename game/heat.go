package game

import (
	"github.com/pthm-cable/daisyworld/components"
	"github.com/pthm-cable/daisyworld/systems"
)

// HeatNeighborhood returns the cells sampled for the local heat at pos:
// the 3x3 block around pos, grown heatRadius-1 times by replacing the set
// with the union of its members' Moore neighbours.
func (w *World) HeatNeighborhood(pos components.Position) []components.Position {
	cells := w.grid.AppendNeighbors(nil, pos, 1, true)
	for i := 1; i < w.heatRadius; i++ {
		next := w.expand(cells)
		if len(next) == 0 {
			break // 1x1 torus has no neighbours
		}
		cells = next
	}
	return cells
}

// expand returns the deduplicated union of the radius-1 neighbourhoods
// (centre excluded) of every cell in cells.
func (w *World) expand(cells []components.Position) []components.Position {
	clear(w.heatMark)
	var next []components.Position
	for _, c := range cells {
		for _, n := range w.grid.Neighbors(c, 1) {
			idx := w.grid.Index(n)
			if w.heatMark[idx] {
				continue
			}
			w.heatMark[idx] = true
			next = append(next, n)
		}
	}
	return next
}

// LocalHeat is the mean energy absorbed over the heat neighbourhood of pos.
// Irradiance is taken at pos for every sampled cell.
func (w *World) LocalHeat(pos components.Position) float64 {
	solar := systems.SolarInput(w.luminosity, w.grid.Wrap(pos).Y, w.grid.Height())
	cells := w.HeatNeighborhood(pos)

	var absorbed float64
	for _, c := range cells {
		absorbed += solar * (1 - w.reflectivity(c))
	}
	return absorbed / float64(len(cells))
}

// reflectivity is the occupant's albedo, or the bare surface albedo.
func (w *World) reflectivity(pos components.Position) float64 {
	if e, ok := w.grid.Occupant(pos); ok {
		return w.daisyMap.Get(e).Albedo
	}
	return w.surfaceAlbedo
}
