package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/daisyworld/config"
	"github.com/pthm-cable/daisyworld/telemetry"
)

func TestRunnerFlushesWindows(t *testing.T) {
	cfg := testConfig(func(c *config.Config) {
		c.World.Width, c.World.Height = 12, 12
		c.Population.Initial = 20
	})

	var windows []telemetry.WindowStats
	r, err := NewRunner(Options{
		Seed:          42,
		Config:        cfg,
		StatsWindow:   3,
		StatsCallback: func(s telemetry.WindowStats) { windows = append(windows, s) },
	})
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	for i := 0; i < 9; i++ {
		if err := r.Update(); err != nil {
			t.Fatal(err)
		}
	}

	if len(windows) != 3 {
		t.Fatalf("got %d windows, want 3", len(windows))
	}
	for i, w := range windows {
		if w.WindowEndTick != 3*(i+1) {
			t.Errorf("window %d ends at tick %d, want %d", i, w.WindowEndTick, 3*(i+1))
		}
		if w.WindowEndTick-w.WindowStartTick != 3 {
			t.Errorf("window %d spans %d ticks, want 3", i, w.WindowEndTick-w.WindowStartTick)
		}
	}

	last := windows[len(windows)-1]
	if last.Population != r.Population() {
		t.Errorf("last window population = %d, runner reports %d", last.Population, r.Population())
	}
	if r.Tick() != 9 {
		t.Errorf("Tick() = %d, want 9", r.Tick())
	}
}

func TestRunnerCountsEvents(t *testing.T) {
	// Every founder is too hot to live
	cfg := testConfig(func(c *config.Config) {
		c.World.Width, c.World.Height = 8, 8
		c.Population.Initial = 10
		c.Solar.Luminosity = 5
		c.Daisy.LifeSpan = 1000
		c.Daisy.TMin = 0
		c.Daisy.TMax = 0
	})

	var got telemetry.WindowStats
	r, err := NewRunner(Options{
		Seed:          7,
		Config:        cfg,
		StatsWindow:   1,
		StatsCallback: func(s telemetry.WindowStats) { got = s },
	})
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	// Founders on the pole row feel no heat and survive the first tick
	var polar int
	for _, d := range r.World().Snapshot().Daisies {
		if d.Y == 0 {
			polar++
		}
	}

	if err := r.Update(); err != nil {
		t.Fatal(err)
	}

	if got.DeathsTemperature != 10-polar {
		t.Errorf("temperature deaths = %d, want %d", got.DeathsTemperature, 10-polar)
	}
	if got.DeathsOldAge != 0 {
		t.Errorf("old-age deaths = %d, want 0", got.DeathsOldAge)
	}
}

func TestRunnerWritesOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	cfg := testConfig(func(c *config.Config) {
		c.World.Width, c.World.Height = 10, 10
		c.Population.Initial = 15
	})

	r, err := NewRunner(Options{
		Seed:        1,
		Config:      cfg,
		StatsWindow: 2,
		OutputDir:   dir,
	})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		if err := r.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"config.yaml", "telemetry.csv", "perf.csv", "daisies.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Errorf("telemetry.csv has %d lines, want header + 2 rows", len(lines))
	}

	daisies, err := os.ReadFile(filepath.Join(dir, "daisies.csv"))
	if err != nil {
		t.Fatal(err)
	}
	rows := strings.Split(strings.TrimSpace(string(daisies)), "\n")
	if rows[0] != "x,y,albedo" {
		t.Errorf("daisies.csv header = %q", rows[0])
	}
	if len(rows)-1 != r.Population() {
		t.Errorf("daisies.csv has %d rows, population %d", len(rows)-1, r.Population())
	}

	loaded, err := config.Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if loaded.World.Width != 10 || loaded.Population.Initial != 15 {
		t.Errorf("config snapshot = %+v", loaded.World)
	}
}

func TestRunnerRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(func(c *config.Config) { c.World.Height = -1 })
	if _, err := NewRunner(Options{Config: cfg}); err == nil {
		t.Error("expected error for invalid config")
	}
}
