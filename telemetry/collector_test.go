package telemetry

import "testing"

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(5)

	if c.ShouldFlush(4) {
		t.Error("should not flush before window end")
	}
	if !c.ShouldFlush(5) {
		t.Error("should flush at window end")
	}

	c.RecordBirth()
	c.RecordBirth()
	c.RecordDeath(DeathOldAge)
	c.RecordDeath(DeathTemperature)
	c.RecordDeath(DeathTemperature)

	snap := &Snapshot{
		Tick:       5,
		Luminosity: 1.1,
		Population: 2,
		Height:     10,
		Daisies:    []DaisyState{{X: 0, Y: 1, Albedo: 0.3}, {X: 1, Y: 8, Albedo: 0.5}},
	}
	stats := c.Flush(snap, 0.3)

	if stats.WindowStartTick != 0 || stats.WindowEndTick != 5 {
		t.Errorf("window = [%d, %d], want [0, 5]", stats.WindowStartTick, stats.WindowEndTick)
	}
	if stats.Births != 2 || stats.DeathsOldAge != 1 || stats.DeathsTemperature != 2 {
		t.Errorf("events = %d/%d/%d, want 2/1/2", stats.Births, stats.DeathsOldAge, stats.DeathsTemperature)
	}
	if stats.Population != 2 || stats.Luminosity != 1.1 || stats.MeanTemperature != 0.3 {
		t.Errorf("reporters = %+v", stats)
	}
	if stats.NorthSouth != 0 {
		t.Errorf("north_south = %d, want 0", stats.NorthSouth)
	}

	// Counters reset and the next window starts at the flush tick
	if c.ShouldFlush(9) {
		t.Error("next window should end at tick 10")
	}
	next := c.Flush(&Snapshot{Tick: 10}, 0)
	if next.Births != 0 || next.DeathsOldAge != 0 || next.DeathsTemperature != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
	if next.WindowStartTick != 5 {
		t.Errorf("next window start = %d, want 5", next.WindowStartTick)
	}
}

func TestDeathCauseString(t *testing.T) {
	if DeathOldAge.String() != "old_age" || DeathTemperature.String() != "temperature" {
		t.Error("unexpected death cause names")
	}
}
