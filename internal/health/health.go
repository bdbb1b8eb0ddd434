// internal/health/health.go
package health

// Status is the inferred health of one motor.
type Status uint8

// ---- STATUS CODES ----

// StatusUnknown means the motor has not reported yet.
const StatusUnknown Status = 0

// StatusNormal means every enabled check passed.
const StatusNormal Status = 1

// StatusDown means at least one enabled check failed on updated data.
const StatusDown Status = 2

// String returns the wire spelling of the status.
func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusDown:
		return "down"
	default:
		return "unknown"
	}
}

// Check is one toggleable min/max bound check. Bounds are inclusive.
type Check struct {
	Enabled bool
	Min     float64
	Max     float64
}

// Thresholds holds every check the evaluator knows about.
// Read-only after startup; built from configuration.
type Thresholds struct {
	RPM          Check
	Voltage      Check
	TotalCurrent Check
	PhaseCurrent Check
	MosfetTemp   Check
}

// Metrics is the slice of one motor reading the evaluator consumes.
// Updated reports whether the latest frame carried fresh data; checks on a
// non-updated reading are skipped so a motor that merely stopped sending is
// never flagged down on stale values.
type Metrics struct {
	Updated      bool
	RPM          float64
	Voltage      float64
	TotalCurrent float64
	PhaseCurrent float64
	MosfetTemp   float64
}

// Evaluate maps one motor's latest readings to a verdict.
// Down iff any enabled, non-skipped check is out of bounds.
func Evaluate(m Metrics, t Thresholds) Status {
	checks := [...]struct {
		check Check
		value float64
	}{
		{t.RPM, m.RPM},
		{t.Voltage, m.Voltage},
		{t.TotalCurrent, m.TotalCurrent},
		{t.PhaseCurrent, m.PhaseCurrent},
		{t.MosfetTemp, m.MosfetTemp},
	}

	for _, c := range checks {
		if !c.check.Enabled {
			continue
		}
		if !m.Updated {
			// No fresh data: treat the check as passing.
			continue
		}
		if !withinLimits(c.value, c.check) {
			return StatusDown
		}
	}

	return StatusNormal
}

func withinLimits(v float64, c Check) bool {
	return v >= c.Min && v <= c.Max
}
