// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidConfig is returned when a configuration cannot describe a world.
var ErrInvalidConfig = errors.New("invalid config")

// Schedule names accepted by solar.schedule.
const (
	ScheduleStable         = "stable"
	ScheduleLinearIncrease = "linear_increase"

	// ScheduleLinearIncreaseLegacy is the spelling older parameter files use.
	ScheduleLinearIncreaseLegacy = "linear increase"
)

// Config holds all simulation configuration parameters.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Population PopulationConfig `yaml:"population"`
	Solar      SolarConfig      `yaml:"solar"`
	Daisy      DaisyConfig      `yaml:"daisy"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// WorldConfig holds planet geometry and surface parameters.
type WorldConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	HeatRadius    int     `yaml:"heat_radius"`    // Neighbourhood expansions used for local heat (>= 1)
	SurfaceAlbedo float64 `yaml:"surface_albedo"` // Reflectivity of empty cells
}

// PopulationConfig holds initial population parameters.
type PopulationConfig struct {
	Initial int `yaml:"initial"` // Clamped to width*height
}

// SolarConfig holds the luminosity model.
type SolarConfig struct {
	Luminosity float64 `yaml:"luminosity"`
	Schedule   string  `yaml:"schedule"`
	Increase   float64 `yaml:"increase"` // Only used by linear_increase
}

// DaisyConfig holds the traits every founder daisy starts with.
type DaisyConfig struct {
	LifeSpan      int     `yaml:"life_span"`
	TMin          float64 `yaml:"t_min"`
	TMax          float64 `yaml:"t_max"`
	MutationRange float64 `yaml:"mutation_range"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window"`
	PerfCollectorWindow int `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Cells          int // World.Width * World.Height
	InitialDaisies int // Population.Initial clamped to Cells
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are broken: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.ComputeDerived()

	return cfg, nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// ComputeDerived recalculates values derived from the loaded config.
// Call it again after mutating fields by hand.
func (c *Config) ComputeDerived() {
	c.Derived.Cells = c.World.Width * c.World.Height
	if c.Derived.Cells < 0 {
		c.Derived.Cells = 0
	}
	c.Derived.InitialDaisies = min(c.Population.Initial, c.Derived.Cells)
}

// Validate reports the first parameter that cannot describe a world.
// An initial population larger than the grid is not an error; it is clamped.
func (c *Config) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: grid must be positive, got %dx%d", ErrInvalidConfig, c.World.Width, c.World.Height)
	case c.Population.Initial < 0:
		return fmt.Errorf("%w: negative initial population %d", ErrInvalidConfig, c.Population.Initial)
	case c.World.HeatRadius < 1:
		return fmt.Errorf("%w: heat_radius must be >= 1, got %d", ErrInvalidConfig, c.World.HeatRadius)
	case c.World.SurfaceAlbedo < 0 || c.World.SurfaceAlbedo > 1:
		return fmt.Errorf("%w: surface_albedo %v outside [0, 1]", ErrInvalidConfig, c.World.SurfaceAlbedo)
	case c.Daisy.TMin > c.Daisy.TMax:
		return fmt.Errorf("%w: t_min %v > t_max %v", ErrInvalidConfig, c.Daisy.TMin, c.Daisy.TMax)
	case c.Daisy.MutationRange < 0:
		return fmt.Errorf("%w: negative mutation_range %v", ErrInvalidConfig, c.Daisy.MutationRange)
	case c.Daisy.LifeSpan < 0:
		return fmt.Errorf("%w: negative life_span %d", ErrInvalidConfig, c.Daisy.LifeSpan)
	}
	switch c.Solar.Schedule {
	case "", ScheduleStable, ScheduleLinearIncrease, ScheduleLinearIncreaseLegacy:
	default:
		return fmt.Errorf("%w: unknown luminosity schedule %q", ErrInvalidConfig, c.Solar.Schedule)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
