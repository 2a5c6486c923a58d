package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/daisyworld/config"
	"github.com/pthm-cable/daisyworld/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Int("stats-window", 0, "Stats window size in ticks (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 1000, "Stop after N ticks (0 = unlimited)")
	stopOnExtinction := flag.Bool("stop-on-extinction", true, "Stop when no daisies remain")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	r, err := game.NewRunner(game.Options{
		Seed:        rngSeed,
		LogStats:    *logStats,
		StatsWindow: *statsWindow,
		OutputDir:   *outputDir,
	})
	if err != nil {
		slog.Error("failed to create world", "error", err)
		os.Exit(1)
	}

	slog.Info("starting simulation",
		"seed", rngSeed,
		"population", r.Population(),
		"schedule", r.World().Schedule().Name(),
		"max_ticks", *maxTicks,
	)

	if err := run(r, *maxTicks, *stopOnExtinction); err != nil {
		r.Close()
		slog.Error("simulation failed", "tick", r.Tick(), "error", err)
		os.Exit(1)
	}

	if err := r.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
		os.Exit(1)
	}
}

// run steps r until maxTicks or, when requested, extinction.
func run(r *game.Runner, maxTicks int, stopOnExtinction bool) error {
	for {
		if err := r.Update(); err != nil {
			return err
		}

		if stopOnExtinction && r.Population() == 0 {
			slog.Info("daisies extinct", "tick", r.Tick(), "luminosity", r.World().Luminosity())
			return nil
		}
		if maxTicks > 0 && r.Tick() >= maxTicks {
			slog.Info("max ticks reached", "tick", r.Tick(), "population", r.Population())
			return nil
		}
	}
}
