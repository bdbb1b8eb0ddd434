// internal/telemetry/batcher.go
package telemetry

import (
	"errors"
	"time"

	"github.com/dlvaero/esc-monitor/internal/health"
	"github.com/dlvaero/esc-monitor/internal/registry"
)

// Batcher decides, once per cycle, between full and status-only telemetry.
// Full telemetry is rate-limited independently of the poll cadence.
type Batcher struct {
	fullInterval time.Duration

	lastFull time.Time // zero value: first eligible cycle emits full
	now      func() time.Time
}

// NewBatcher creates a batcher emitting full telemetry at most once per
// fullInterval.
func NewBatcher(fullInterval time.Duration) (*Batcher, error) {
	if fullInterval <= 0 {
		return nil, errors.New("telemetry: full interval must be > 0")
	}
	return &Batcher{
		fullInterval: fullInterval,
		now:          time.Now,
	}, nil
}

// Decide composes this cycle's emission from a point-in-time registry view.
// Nothing is emittable until every motor has reported at least once.
// The full-emission clock resets only when a full snapshot is actually built.
func (b *Batcher) Decide(readings []registry.Reading) Emission {
	for i := range readings {
		if readings[i].Status == health.StatusUnknown {
			return Emission{Kind: KindAbsent}
		}
	}

	now := b.now()
	if now.Sub(b.lastFull) >= b.fullInterval {
		b.lastFull = now
		return Emission{Kind: KindFull, Full: buildFull(readings)}
	}

	statuses := make([]health.Status, len(readings))
	for i := range readings {
		statuses[i] = readings[i].Status
	}
	return Emission{Kind: KindStatusOnly, Statuses: statuses}
}

func buildFull(readings []registry.Reading) *Full {
	n := len(readings)
	f := &Full{
		MotorStatus:  make([]string, n),
		ThrottleIn:   make([]float64, n),
		ThrottleOut:  make([]float64, n),
		Voltage:      make([]float64, n),
		PhaseCurrent: make([]float64, n),
		RPM:          make([]float64, n),
		TotalCurrent: make([]float64, n),
		MosfetTemp:   make([]float64, n),
	}

	for i, r := range readings {
		f.MotorStatus[i] = r.Status.String()
		f.ThrottleIn[i] = r.ThrottleIn
		f.ThrottleOut[i] = r.ThrottleOut
		f.Voltage[i] = r.Voltage
		f.PhaseCurrent[i] = r.PhaseCurrent
		f.RPM[i] = r.RPM
		f.TotalCurrent[i] = r.TotalCurrent
		f.MosfetTemp[i] = r.MosfetTemp
	}

	return f
}
