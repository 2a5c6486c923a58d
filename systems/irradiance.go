package systems

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/pthm-cable/daisyworld/config"
)

// Latitude maps row y to [0, 1): 0 at the southern pole row, 0.5 at the equator.
func Latitude(y, height int) float64 {
	return float64(y) / float64(height)
}

// SolarInput is the irradiance reaching row y before reflection.
// It is zero at the poles and peaks at the equator; x does not matter.
func SolarInput(luminosity float64, y, height int) float64 {
	return luminosity * math.Sin(Latitude(y, height)*math.Pi)
}

// LuminositySchedule advances the global luminosity once per tick.
// Implementations must be pure.
type LuminositySchedule interface {
	Next(current float64, tick int) float64
	Name() string
}

// Stable leaves luminosity unchanged.
type Stable struct{}

// Next returns current.
func (Stable) Next(current float64, _ int) float64 { return current }

// Name returns the config name of the schedule.
func (Stable) Name() string { return config.ScheduleStable }

// LinearIncrease adds Delta every tick, unbounded.
type LinearIncrease struct {
	Delta float64
}

// Next returns current + Delta.
func (s LinearIncrease) Next(current float64, tick int) float64 {
	next := current + s.Delta
	slog.Debug("luminosity increased", "tick", tick, "delta", s.Delta, "luminosity", next)
	return next
}

// Name returns the config name of the schedule.
func (LinearIncrease) Name() string { return config.ScheduleLinearIncrease }

// ParseSchedule builds the schedule named by solar.schedule.
// An empty name selects Stable.
func ParseSchedule(name string, increase float64) (LuminositySchedule, error) {
	switch name {
	case "", config.ScheduleStable:
		return Stable{}, nil
	case config.ScheduleLinearIncrease, config.ScheduleLinearIncreaseLegacy:
		return LinearIncrease{Delta: increase}, nil
	}
	return nil, fmt.Errorf("%w: unknown luminosity schedule %q", config.ErrInvalidConfig, name)
}
