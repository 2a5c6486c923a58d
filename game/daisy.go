package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/daisyworld/components"
	"github.com/pthm-cable/daisyworld/systems"
	"github.com/pthm-cable/daisyworld/telemetry"
)

// activate runs one daisy's turn: age, then die of old age, die of heat
// stress, or reproduce into every empty neighbour.
func (w *World) activate(entity ecs.Entity) error {
	pos := *w.posMap.Get(entity)
	daisy := w.daisyMap.Get(entity)
	daisy.Age++

	heat := w.LocalHeat(pos)

	// Past life expectancy a coin decides, so generations do not die in lockstep
	if daisy.PastLifeSpan() && w.rng.Bool() {
		return w.killDaisy(entity, pos, telemetry.DeathOldAge)
	}
	if daisy.Stressed(heat) {
		return w.killDaisy(entity, pos, telemetry.DeathTemperature)
	}

	// Copy: spawning may move component storage
	return w.reproduce(pos, *daisy)
}

// reproduce fills every empty Moore neighbour of pos with a mutated offspring.
func (w *World) reproduce(pos components.Position, parent components.Daisy) error {
	for _, cell := range w.grid.Neighbors(pos, 1) {
		if !w.grid.IsEmpty(cell) {
			continue
		}
		albedo := systems.MutateAlbedo(w.rng, parent.Albedo, w.mutationRange)
		if _, err := w.spawnDaisy(cell, parent.Offspring(albedo)); err != nil {
			return err
		}
		w.recorder.RecordBirth()
	}
	return nil
}
