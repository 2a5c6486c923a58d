package telemetry

// Snapshot is the read-only view of a world that reporting consumes.
type Snapshot struct {
	Tick       int     `json:"tick"`
	Luminosity float64 `json:"luminosity"`
	Population int     `json:"population"`

	Width  int `json:"width"`
	Height int `json:"height"`

	// Daisies in row-major grid order.
	Daisies []DaisyState `json:"daisies"`
}

// DaisyState holds one daisy's position and albedo.
type DaisyState struct {
	X      int     `json:"x" csv:"x"`
	Y      int     `json:"y" csv:"y"`
	Albedo float64 `json:"albedo" csv:"albedo"`
}

// Albedos returns the albedo of every daisy in the snapshot.
func (s *Snapshot) Albedos() []float64 {
	out := make([]float64, len(s.Daisies))
	for i, d := range s.Daisies {
		out[i] = d.Albedo
	}
	return out
}
