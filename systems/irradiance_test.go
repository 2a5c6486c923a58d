package systems

import (
	"errors"
	"math"
	"testing"

	"github.com/pthm-cable/daisyworld/config"
)

func TestSolarInput(t *testing.T) {
	const height = 90
	tests := []struct {
		name string
		y    int
		want float64
	}{
		{"south pole row", 0, 0},
		{"equator", 45, 2.0},
		{"quarter", 15, 2.0 * math.Sin(math.Pi/6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SolarInput(2.0, tt.y, height)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SolarInput(2, %d) = %v, want %v", tt.y, got, tt.want)
			}
		})
	}
}

func TestSolarInputSymmetric(t *testing.T) {
	const height = 20
	for y := 1; y < height; y++ {
		a := SolarInput(1, y, height)
		b := SolarInput(1, height-y, height)
		if math.Abs(a-b) > 1e-9 {
			t.Errorf("rows %d and %d differ: %v vs %v", y, height-y, a, b)
		}
	}
}

func TestLinearIncreaseAccumulates(t *testing.T) {
	const (
		initial = 1.0
		delta   = 0.01
		ticks   = 250
	)
	var s LuminositySchedule = LinearIncrease{Delta: delta}
	lum := initial
	for k := 0; k < ticks; k++ {
		lum = s.Next(lum, k)
	}
	want := initial + ticks*delta
	if math.Abs(lum-want) > 1e-9 {
		t.Errorf("luminosity after %d ticks = %v, want %v", ticks, lum, want)
	}
}

func TestStableIsInvariant(t *testing.T) {
	var s LuminositySchedule = Stable{}
	lum := 1.35
	for k := 0; k < 100; k++ {
		lum = s.Next(lum, k)
	}
	if lum != 1.35 {
		t.Errorf("luminosity = %v, want 1.35", lum)
	}
}

func TestParseSchedule(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"", config.ScheduleStable, false},
		{config.ScheduleStable, config.ScheduleStable, false},
		{config.ScheduleLinearIncrease, config.ScheduleLinearIncrease, false},
		{config.ScheduleLinearIncreaseLegacy, config.ScheduleLinearIncrease, false},
		{"sinusoidal", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseSchedule(tt.name, 0.5)
			if tt.wantErr {
				if !errors.Is(err, config.ErrInvalidConfig) {
					t.Errorf("err = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", s.Name(), tt.want)
			}
		})
	}
}
