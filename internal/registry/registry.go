// internal/registry/registry.go
package registry

import (
	"errors"
	"fmt"
	"time"

	"github.com/dlvaero/esc-monitor/internal/decoder"
	"github.com/dlvaero/esc-monitor/internal/health"
)

// ErrIndexOutOfRange marks a frame addressing a motor outside the table.
var ErrIndexOutOfRange = errors.New("registry: motor index out of range")

// Reading is the last-seen state of one motor.
// It contains no logic and no memory of the past beyond current state.
type Reading struct {
	Seen    bool // at least one frame applied
	Updated bool // updated flag from the latest frame

	// LastSeenAt is the last time a frame with the updated flag set arrived.
	// Initialized to construction time so a motor that never reports still
	// trips the staleness deadline.
	LastSeenAt time.Time

	TimestampMs   float64
	ThrottleIn    float64
	ThrottleOut   float64
	RPM           float64
	Voltage       float64
	TotalCurrent  float64
	PhaseCurrent  float64
	MosfetTemp    float64
	CapacitorTemp float64

	Status health.Status
}

// Registry is the fixed-size table of per-motor state.
// Exclusively owned by the poll loop; no concurrent writers.
type Registry struct {
	readings   []Reading
	thresholds health.Thresholds
	now        func() time.Time
}

// New creates a registry for count motors, all in the Unknown state.
func New(count int, thresholds health.Thresholds) (*Registry, error) {
	if count <= 0 {
		return nil, errors.New("registry: motor count must be > 0")
	}

	r := &Registry{
		readings:   make([]Reading, count),
		thresholds: thresholds,
		now:        time.Now,
	}

	start := time.Now()
	for i := range r.readings {
		r.readings[i].LastSeenAt = start
	}

	return r, nil
}

// Count returns the configured motor count.
func (r *Registry) Count() int {
	return len(r.readings)
}

// Apply overwrites the addressed motor's metrics with the frame's values.
// All fields are written even when the frame's updated flag is false; the
// flag only gates the staleness clock. Status is recomputed on every apply.
// Out-of-range indices leave the table untouched.
func (r *Registry) Apply(f decoder.Frame) error {
	if f.Motor < 0 || f.Motor >= len(r.readings) {
		return fmt.Errorf("%w: motor %d, table holds %d",
			ErrIndexOutOfRange, f.Motor, len(r.readings))
	}

	m := &r.readings[f.Motor]

	m.Seen = true
	m.Updated = f.Updated
	m.TimestampMs = f.TimestampMs
	m.ThrottleIn = f.ThrottleIn
	m.ThrottleOut = f.ThrottleOut
	m.RPM = f.RPM
	m.Voltage = f.Voltage
	m.TotalCurrent = f.TotalCurrent
	m.PhaseCurrent = f.PhaseCurrent
	m.MosfetTemp = f.MosfetTemp
	m.CapacitorTemp = f.CapacitorTemp

	// Must come after the assignments above: the evaluator reads them.
	m.Status = health.Evaluate(health.Metrics{
		Updated:      f.Updated,
		RPM:          f.RPM,
		Voltage:      f.Voltage,
		TotalCurrent: f.TotalCurrent,
		PhaseCurrent: f.PhaseCurrent,
		MosfetTemp:   f.MosfetTemp,
	}, r.thresholds)

	if f.Updated {
		m.LastSeenAt = r.now()
	}

	return nil
}

// AllReported reports whether every motor has been applied at least once.
func (r *Registry) AllReported() bool {
	for i := range r.readings {
		if r.readings[i].Status == health.StatusUnknown {
			return false
		}
	}
	return true
}

// Snapshot returns a point-in-time copy of the table, never live references.
func (r *Registry) Snapshot() []Reading {
	out := make([]Reading, len(r.readings))
	copy(out, r.readings)
	return out
}
