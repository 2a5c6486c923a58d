// Package game assembles the Daisyworld model: a torus of daisies whose
// albedo feeds back into the heat each of them feels.
package game

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/daisyworld/components"
	"github.com/pthm-cable/daisyworld/config"
	"github.com/pthm-cable/daisyworld/systems"
	"github.com/pthm-cable/daisyworld/telemetry"
)

// EventRecorder receives lifecycle events. telemetry.Collector satisfies it.
type EventRecorder interface {
	RecordBirth()
	RecordDeath(cause telemetry.DeathCause)
}

// nopRecorder discards events.
type nopRecorder struct{}

func (nopRecorder) RecordBirth() {}
func (nopRecorder) RecordDeath(telemetry.DeathCause) {}

// World owns the daisy registry, the grid and the scheduler.
type World struct {
	rng systems.Rand

	// Daisy registry; the grid and scheduler hold non-owning handles
	ecs         *ecs.World
	daisyMapper *ecs.Map2[components.Position, components.Daisy]
	daisyFilter *ecs.Filter2[components.Position, components.Daisy]
	posMap      *ecs.Map1[components.Position]
	daisyMap    *ecs.Map1[components.Daisy]

	grid      *systems.Torus
	scheduler *systems.Scheduler
	schedule  systems.LuminositySchedule
	recorder  EventRecorder

	// Parameters
	luminosity    float64
	surfaceAlbedo float64
	mutationRange float64
	heatRadius    int
	founder       components.Daisy

	// State
	tick       int
	population int

	// Scratch for heat neighbourhood expansion
	heatMark []bool
}

// NewWorld builds a world from cfg and seeds the initial population.
// The configured population is clamped to the number of cells.
func NewWorld(cfg *config.Config, rng systems.Rand) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	schedule, err := systems.ParseSchedule(cfg.Solar.Schedule, cfg.Solar.Increase)
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	grid := systems.NewTorus(cfg.World.Width, cfg.World.Height)

	w := &World{
		rng:         rng,
		ecs:         world,
		daisyMapper: ecs.NewMap2[components.Position, components.Daisy](world),
		daisyFilter: ecs.NewFilter2[components.Position, components.Daisy](world),
		posMap:      ecs.NewMap1[components.Position](world),
		daisyMap:    ecs.NewMap1[components.Daisy](world),
		grid:        grid,
		scheduler:   systems.NewScheduler(rng),
		schedule:    schedule,
		recorder:    nopRecorder{},

		luminosity:    cfg.Solar.Luminosity,
		surfaceAlbedo: cfg.World.SurfaceAlbedo,
		mutationRange: cfg.Daisy.MutationRange,
		heatRadius:    cfg.World.HeatRadius,
		founder: components.Daisy{
			LifeSpan: cfg.Daisy.LifeSpan,
			TMin:     cfg.Daisy.TMin,
			TMax:     cfg.Daisy.TMax,
		},

		heatMark: make([]bool, grid.Cells()),
	}

	if err := w.seedPopulation(min(cfg.Population.Initial, grid.Cells())); err != nil {
		return nil, fmt.Errorf("seeding population: %w", err)
	}

	return w, nil
}

// SetRecorder routes birth and death events to r. Nil disables recording.
func (w *World) SetRecorder(r EventRecorder) {
	if r == nil {
		r = nopRecorder{}
	}
	w.recorder = r
}

// Step advances luminosity once, then activates every daisy alive at the
// start of the tick in random order.
func (w *World) Step() error {
	w.luminosity = w.schedule.Next(w.luminosity, w.tick)
	if err := w.scheduler.Tick(w.activate); err != nil {
		return err
	}
	w.tick++
	return nil
}

// Tick returns the number of completed steps.
func (w *World) Tick() int { return w.tick }

// Luminosity returns the current global luminosity.
func (w *World) Luminosity() float64 { return w.luminosity }

// Population returns the live daisy count.
func (w *World) Population() int { return w.population }

// Width returns the number of grid columns.
func (w *World) Width() int { return w.grid.Width() }

// Height returns the number of grid rows.
func (w *World) Height() int { return w.grid.Height() }

// Schedule returns the luminosity schedule in use.
func (w *World) Schedule() systems.LuminositySchedule { return w.schedule }

// Snapshot returns the state reporting consumes, daisies in row-major order.
func (w *World) Snapshot() *telemetry.Snapshot {
	snap := &telemetry.Snapshot{
		Tick:       w.tick,
		Luminosity: w.luminosity,
		Population: w.population,
		Width:      w.grid.Width(),
		Height:     w.grid.Height(),
		Daisies:    make([]telemetry.DaisyState, 0, w.population),
	}
	for idx := 0; idx < w.grid.Cells(); idx++ {
		pos := w.grid.At(idx)
		e, ok := w.grid.Occupant(pos)
		if !ok {
			continue
		}
		snap.Daisies = append(snap.Daisies, telemetry.DaisyState{
			X:      pos.X,
			Y:      pos.Y,
			Albedo: w.daisyMap.Get(e).Albedo,
		})
	}
	return snap
}

// MeanTemperature returns the mean local heat over live daisies, 0 when
// the planet is bare.
func (w *World) MeanTemperature() float64 {
	if w.population == 0 {
		return 0
	}
	var sum float64
	var n int
	query := w.daisyFilter.Query()
	for query.Next() {
		pos, _ := query.Get()
		sum += w.LocalHeat(*pos)
		n++
	}
	return sum / float64(n)
}

// CheckInvariants verifies that grid, scheduler and registry agree and that
// every albedo is in bounds.
func (w *World) CheckInvariants() error {
	if w.grid.Len() != w.population || w.scheduler.Len() != w.population {
		return fmt.Errorf("population %d, occupied cells %d, scheduled %d",
			w.population, w.grid.Len(), w.scheduler.Len())
	}

	var firstErr error
	var registered int
	query := w.daisyFilter.Query()
	for query.Next() {
		registered++
		if firstErr != nil {
			continue
		}
		e := query.Entity()
		pos, daisy := query.Get()
		if occ, ok := w.grid.Occupant(*pos); !ok || occ != e {
			firstErr = fmt.Errorf("daisy %v at %v not indexed by grid", e, *pos)
		} else if !w.scheduler.Contains(e) {
			firstErr = fmt.Errorf("daisy %v at %v not scheduled", e, *pos)
		} else if daisy.Albedo < components.AlbedoMin || daisy.Albedo > components.AlbedoMax {
			firstErr = fmt.Errorf("daisy %v albedo %v out of bounds", e, daisy.Albedo)
		}
	}
	if firstErr != nil {
		return firstErr
	}
	if registered != w.population {
		return fmt.Errorf("registry holds %d daisies, population %d", registered, w.population)
	}
	return nil
}
