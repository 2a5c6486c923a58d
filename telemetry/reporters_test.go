package telemetry

import (
	"math"
	"testing"
)

func TestNorthSouthBalance(t *testing.T) {
	tests := []struct {
		name   string
		height int
		ys     []int
		want   int
	}{
		{"empty", 10, nil, 0},
		{"all north", 10, []int{6, 7, 9}, 3},
		{"all south", 10, []int{0, 1, 4}, -3},
		{"equator row excluded", 10, []int{5, 5, 6}, 1},
		{"odd height has no equator row", 3, []int{1, 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := &Snapshot{Height: tt.height}
			for _, y := range tt.ys {
				snap.Daisies = append(snap.Daisies, DaisyState{Y: y, Albedo: 0.5})
			}
			if got := NorthSouthBalance(snap); got != tt.want {
				t.Errorf("NorthSouthBalance = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeanAlbedo(t *testing.T) {
	snap := &Snapshot{
		Population: 3,
		Daisies: []DaisyState{
			{Albedo: 0.2}, {Albedo: 0.4}, {Albedo: 0.9},
		},
	}
	mean, ok := MeanAlbedo(snap)
	if !ok {
		t.Fatal("expected ok for non-empty snapshot")
	}
	if math.Abs(mean-0.5) > 1e-9 {
		t.Errorf("mean = %v, want 0.5", mean)
	}

	if _, ok := MeanAlbedo(&Snapshot{}); ok {
		t.Error("expected ok=false for empty snapshot")
	}
}

func TestHeadlineReporters(t *testing.T) {
	snap := &Snapshot{Luminosity: 1.35, Population: 12}
	if Irradiance(snap) != 1.35 {
		t.Errorf("Irradiance = %v, want 1.35", Irradiance(snap))
	}
	if Population(snap) != 12 {
		t.Errorf("Population = %d, want 12", Population(snap))
	}
}
