package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds the reporters sampled at the end of a stats window plus
// the events counted during it.
type WindowStats struct {
	WindowStartTick int `csv:"-"`
	WindowEndTick   int `csv:"tick"`

	// Reporters at window end
	Luminosity      float64 `csv:"solar_irradiance"`
	Population      int     `csv:"population"`
	MeanAlbedo      float64 `csv:"mean_albedo"`
	NorthSouth      int     `csv:"north_south"`
	MeanTemperature float64 `csv:"mean_temperature"`

	// Albedo distribution
	AlbedoStd float64 `csv:"albedo_std"`
	AlbedoP10 float64 `csv:"albedo_p10"`
	AlbedoP50 float64 `csv:"albedo_p50"`
	AlbedoP90 float64 `csv:"albedo_p90"`

	// Events during window
	Births            int `csv:"births"`
	DeathsOldAge      int `csv:"deaths_old_age"`
	DeathsTemperature int `csv:"deaths_temperature"`
}

// ComputeAlbedoStats calculates mean, sample standard deviation and
// percentiles. All values are zero for an empty slice; std is zero for a
// single value.
func ComputeAlbedoStats(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	if n == 1 {
		mean = values[0]
	} else {
		mean, std = stat.MeanStdDev(values, nil)
	}

	// stat.Quantile needs sorted input
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartTick),
		slog.Int("window_end", s.WindowEndTick),
		slog.Float64("solar_irradiance", s.Luminosity),
		slog.Int("population", s.Population),
		slog.Float64("mean_albedo", s.MeanAlbedo),
		slog.Int("north_south", s.NorthSouth),
		slog.Float64("mean_temperature", s.MeanTemperature),
		slog.Float64("albedo_std", s.AlbedoStd),
		slog.Float64("albedo_p10", s.AlbedoP10),
		slog.Float64("albedo_p50", s.AlbedoP50),
		slog.Float64("albedo_p90", s.AlbedoP90),
		slog.Int("births", s.Births),
		slog.Int("deaths_old_age", s.DeathsOldAge),
		slog.Int("deaths_temperature", s.DeathsTemperature),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
