package game

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/daisyworld/components"
	"github.com/pthm-cable/daisyworld/systems"
	"github.com/pthm-cable/daisyworld/telemetry"
)

// seedPopulation places n founders on distinct cells drawn without
// replacement, each with an independent uniform albedo.
func (w *World) seedPopulation(n int) error {
	urn := make([]int, w.grid.Cells())
	for i := range urn {
		urn[i] = i
	}

	for i := 0; i < n; i++ {
		// Partial Fisher-Yates: urn[i:] holds the undrawn cells
		j := i + w.rng.IntN(len(urn)-i)
		urn[i], urn[j] = urn[j], urn[i]

		daisy := w.founder
		daisy.Albedo = systems.RandomAlbedo(w.rng)
		if _, err := w.spawnDaisy(w.grid.At(urn[i]), daisy); err != nil {
			return err
		}
	}
	return nil
}

// spawnDaisy registers a daisy, places it on the grid and schedules it.
func (w *World) spawnDaisy(pos components.Position, daisy components.Daisy) (ecs.Entity, error) {
	pos = w.grid.Wrap(pos)
	daisy.Albedo = components.ClampAlbedo(daisy.Albedo)

	entity := w.daisyMapper.NewEntity(&pos, &daisy)
	if err := w.grid.Place(pos, entity); err != nil {
		w.ecs.RemoveEntity(entity)
		return ecs.Entity{}, err
	}
	w.scheduler.Add(entity)
	w.population++

	return entity, nil
}

// killDaisy removes a daisy from grid, scheduler and registry.
func (w *World) killDaisy(entity ecs.Entity, pos components.Position, cause telemetry.DeathCause) error {
	occupant, err := w.grid.Remove(pos)
	if err != nil {
		return err
	}
	if occupant != entity {
		return fmt.Errorf("grid cell %v held %v, expected %v", pos, occupant, entity)
	}
	if err := w.scheduler.Remove(entity); err != nil {
		return err
	}
	w.ecs.RemoveEntity(entity)
	w.population--
	w.recorder.RecordDeath(cause)

	return nil
}
