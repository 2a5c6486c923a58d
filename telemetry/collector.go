package telemetry

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowTicks int

	// Current window tracking
	windowStartTick int

	// Event counters for current window
	births            int
	deathsOldAge      int
	deathsTemperature int
}

// NewCollector creates a new stats collector that flushes every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: windowTicks}
}

// RecordBirth records a reproduction event.
func (c *Collector) RecordBirth() {
	c.births++
}

// RecordDeath records a death event.
func (c *Collector) RecordDeath(cause DeathCause) {
	switch cause {
	case DeathOldAge:
		c.deathsOldAge++
	case DeathTemperature:
		c.deathsTemperature++
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats from the snapshot and resets counters for
// the next window. meanTemperature is the mean local heat over live daisies.
func (c *Collector) Flush(snap *Snapshot, meanTemperature float64) WindowStats {
	mean, std, p10, p50, p90 := ComputeAlbedoStats(snap.Albedos())

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   snap.Tick,

		Luminosity:      Irradiance(snap),
		Population:      Population(snap),
		MeanAlbedo:      mean,
		NorthSouth:      NorthSouthBalance(snap),
		MeanTemperature: meanTemperature,

		AlbedoStd: std,
		AlbedoP10: p10,
		AlbedoP50: p50,
		AlbedoP90: p90,

		Births:            c.births,
		DeathsOldAge:      c.deathsOldAge,
		DeathsTemperature: c.deathsTemperature,
	}

	c.windowStartTick = snap.Tick
	c.births = 0
	c.deathsOldAge = 0
	c.deathsTemperature = 0

	return stats
}
