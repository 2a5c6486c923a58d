// Package telemetry provides population reporting, windowed stats and CSV output.
package telemetry

// DeathCause identifies why a daisy died.
type DeathCause uint8

const (
	DeathOldAge DeathCause = iota
	DeathTemperature
)

// String returns the cause name used in logs.
func (c DeathCause) String() string {
	switch c {
	case DeathOldAge:
		return "old_age"
	case DeathTemperature:
		return "temperature"
	}
	return "unknown"
}
