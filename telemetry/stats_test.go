package telemetry

import (
	"math"
	"testing"
)

func TestComputeAlbedoStats(t *testing.T) {
	values := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}
	mean, std, p10, p50, p90 := ComputeAlbedoStats(values)

	if math.Abs(mean-0.5) > 1e-9 {
		t.Errorf("mean = %v, want 0.5", mean)
	}

	// Sample standard deviation of 0.1..0.9
	wantStd := math.Sqrt(0.075)
	if math.Abs(std-wantStd) > 1e-9 {
		t.Errorf("std = %v, want %v", std, wantStd)
	}

	if !(p10 <= p50 && p50 <= p90) {
		t.Errorf("percentiles not ordered: p10=%v p50=%v p90=%v", p10, p50, p90)
	}
	if p10 < 0.1 || p90 > 0.9 {
		t.Errorf("percentiles outside data range: p10=%v p90=%v", p10, p90)
	}
	if math.Abs(p50-0.5) > 1e-9 {
		t.Errorf("p50 = %v, want 0.5", p50)
	}
}

func TestComputeAlbedoStatsDoesNotReorderInput(t *testing.T) {
	values := []float64{0.9, 0.1, 0.5}
	ComputeAlbedoStats(values)
	if values[0] != 0.9 || values[1] != 0.1 || values[2] != 0.5 {
		t.Errorf("input reordered: %v", values)
	}
}

func TestComputeAlbedoStatsEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		wantMean float64
	}{
		{"empty slice", []float64{}, 0},
		{"single element", []float64{0.42}, 0.42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std, _, _, _ := ComputeAlbedoStats(tt.values)
			if mean != tt.wantMean {
				t.Errorf("mean = %v, want %v", mean, tt.wantMean)
			}
			if std != 0 {
				t.Errorf("std = %v, want 0", std)
			}
		})
	}
}
