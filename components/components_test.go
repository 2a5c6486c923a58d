package components

import "testing"

func TestClampAlbedo(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.0, AlbedoMin},
		{0.1, 0.1},
		{0.5, 0.5},
		{0.9, 0.9},
		{1.2, AlbedoMax},
	}
	for _, tt := range tests {
		if got := ClampAlbedo(tt.in); got != tt.want {
			t.Errorf("ClampAlbedo(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDaisyStressed(t *testing.T) {
	d := Daisy{TMin: 0.2, TMax: 0.4}
	tests := []struct {
		heat float64
		want bool
	}{
		{0.1, true},
		{0.2, false},
		{0.3, false},
		{0.4, false},
		{0.41, true},
	}
	for _, tt := range tests {
		if got := d.Stressed(tt.heat); got != tt.want {
			t.Errorf("Stressed(%v) = %v, want %v", tt.heat, got, tt.want)
		}
	}
}

func TestOffspringInheritsTraits(t *testing.T) {
	parent := Daisy{Albedo: 0.5, Age: 7, LifeSpan: 12, TMin: 0.1, TMax: 0.6}
	child := parent.Offspring(0.55)

	if child.Age != 0 {
		t.Errorf("child age = %d, want 0", child.Age)
	}
	if child.LifeSpan != 12 || child.TMin != 0.1 || child.TMax != 0.6 {
		t.Errorf("child traits = %+v, want inherited from %+v", child, parent)
	}
	if child.Albedo != 0.55 {
		t.Errorf("child albedo = %v, want 0.55", child.Albedo)
	}
}
