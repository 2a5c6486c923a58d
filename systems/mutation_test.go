package systems

import (
	"testing"

	"github.com/pthm-cable/daisyworld/components"
)

func TestMutateAlbedoStaysInBounds(t *testing.T) {
	const eps = 1e-12
	rng := NewRNG(7)
	tests := []struct {
		name           string
		albedo, mut    float64
		wantLo, wantHi float64
	}{
		{"interior", 0.5, 0.05, 0.45, 0.55},
		{"near floor", 0.12, 0.05, components.AlbedoMin, 0.17},
		{"near ceiling", 0.88, 0.05, 0.83, components.AlbedoMax},
		{"huge range", 0.5, 5, components.AlbedoMin, components.AlbedoMax},
		{"no mutation", 0.3, 0, 0.3, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				got := MutateAlbedo(rng, tt.albedo, tt.mut)
				if got < tt.wantLo-eps || got > tt.wantHi+eps {
					t.Fatalf("MutateAlbedo(%v, %v) = %v outside [%v, %v]", tt.albedo, tt.mut, got, tt.wantLo, tt.wantHi)
				}
			}
		})
	}
}

func TestRandomAlbedoInRange(t *testing.T) {
	rng := NewRNG(8)
	for i := 0; i < 1000; i++ {
		a := RandomAlbedo(rng)
		if a < components.AlbedoMin || a > components.AlbedoMax {
			t.Fatalf("RandomAlbedo = %v", a)
		}
	}
}
