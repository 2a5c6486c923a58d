package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/daisyworld/config"
	"github.com/pthm-cable/daisyworld/systems"
	"github.com/pthm-cable/daisyworld/telemetry"
)

// Options configures a Runner.
type Options struct {
	Seed        int64
	Rand        systems.Rand   // Overrides Seed when set
	Config      *config.Config // nil = config.Cfg()
	LogStats    bool
	StatsWindow int    // Ticks per stats window (0 = use config)
	OutputDir   string // Directory for CSV logs and config snapshot ("" = disabled)

	// StatsCallback receives every flushed stats window.
	StatsCallback func(telemetry.WindowStats)
}

// Runner drives a World headlessly and feeds telemetry.
type Runner struct {
	cfg   *config.Config
	world *World

	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager

	logStats      bool
	statsCallback func(telemetry.WindowStats)
}

// NewRunner builds the world and telemetry described by opts.
func NewRunner(opts Options) (*Runner, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	rng := opts.Rand
	if rng == nil {
		rng = systems.NewRNG(opts.Seed)
	}

	world, err := NewWorld(cfg, rng)
	if err != nil {
		return nil, err
	}

	statsWindow := opts.StatsWindow
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	r := &Runner{
		cfg:           cfg,
		world:         world,
		collector:     telemetry.NewCollector(statsWindow),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		logStats:      opts.LogStats,
		statsCallback: opts.StatsCallback,
	}
	world.SetRecorder(r.collector)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	r.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	return r, nil
}

// World returns the simulated world.
func (r *Runner) World() *World { return r.world }

// Tick returns the number of completed steps.
func (r *Runner) Tick() int { return r.world.Tick() }

// Population returns the live daisy count.
func (r *Runner) Population() int { return r.world.Population() }

// Update runs one simulation step and flushes telemetry when a window ends.
func (r *Runner) Update() error {
	r.perfCollector.StartTick()

	r.perfCollector.StartPhase(telemetry.PhaseStep)
	if err := r.world.Step(); err != nil {
		return fmt.Errorf("tick %d: %w", r.world.Tick(), err)
	}

	r.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	r.flushTelemetry()

	r.perfCollector.EndTick()
	return nil
}

// flushTelemetry emits a stats window when the collector says one is due.
func (r *Runner) flushTelemetry() {
	if !r.collector.ShouldFlush(r.world.Tick()) {
		return
	}

	snap := r.world.Snapshot()
	stats := r.collector.Flush(snap, r.world.MeanTemperature())
	perfStats := r.perfCollector.Stats()

	if r.statsCallback != nil {
		r.statsCallback(stats)
	}

	if r.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if r.outputManager != nil {
		if err := r.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := r.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// Close writes the final daisy dump and closes output files.
func (r *Runner) Close() error {
	if r.outputManager == nil {
		return nil
	}
	if err := r.outputManager.WriteDaisies(r.world.Snapshot()); err != nil {
		slog.Error("failed to write daisies", "error", err)
	}
	return r.outputManager.Close()
}
