package main

import (
	"math"

	"github.com/pthm-cable/daisyworld/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
	Integer bool    // Rounded before it reaches the config
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Daisy traits
			{Name: "mutation_range", Path: "daisy.mutation_range", Min: 0.0, Max: 0.2, Default: 0.05},
			{Name: "life_span", Path: "daisy.life_span", Min: 2, Max: 40, Default: 10, Integer: true},
			{Name: "t_min", Path: "daisy.t_min", Min: 0.0, Max: 0.4, Default: 0.2},
			{Name: "t_max", Path: "daisy.t_max", Min: 0.2, Max: 0.8, Default: 0.4},
			// Planet
			{Name: "heat_radius", Path: "world.heat_radius", Min: 1, Max: 4, Default: 2, Integer: true},
			{Name: "surface_albedo", Path: "world.surface_albedo", Min: 0.1, Max: 0.9, Default: 0.4},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds, rounding integer parameters.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := math.Max(spec.Min, math.Min(spec.Max, v[i]))
		if spec.Integer {
			val = math.Round(val)
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// A t_min above t_max is swapped so the result always validates.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	// Order must match Specs order
	cfg.Daisy.MutationRange = clamped[0]
	cfg.Daisy.LifeSpan = int(clamped[1])
	cfg.Daisy.TMin = clamped[2]
	cfg.Daisy.TMax = clamped[3]
	cfg.World.HeatRadius = int(clamped[4])
	cfg.World.SurfaceAlbedo = clamped[5]

	if cfg.Daisy.TMin > cfg.Daisy.TMax {
		cfg.Daisy.TMin, cfg.Daisy.TMax = cfg.Daisy.TMax, cfg.Daisy.TMin
	}
	cfg.ComputeDerived()
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Daisy.MutationRange,
		float64(cfg.Daisy.LifeSpan),
		cfg.Daisy.TMin,
		cfg.Daisy.TMax,
		float64(cfg.World.HeatRadius),
		cfg.World.SurfaceAlbedo,
	}
}
