// internal/telemetry/batcher_test.go
package telemetry

import (
	"testing"
	"time"

	"github.com/dlvaero/esc-monitor/internal/health"
	"github.com/dlvaero/esc-monitor/internal/registry"
)

func reported(n int) []registry.Reading {
	readings := make([]registry.Reading, n)
	for i := range readings {
		readings[i] = registry.Reading{
			Seen:         true,
			Updated:      true,
			ThrottleIn:   50,
			ThrottleOut:  48,
			RPM:          5000,
			Voltage:      22.1,
			TotalCurrent: 10.0,
			PhaseCurrent: 3.2,
			MosfetTemp:   40,
			Status:       health.StatusNormal,
		}
	}
	return readings
}

func TestNewBatcher_RejectsBadInterval(t *testing.T) {
	if _, err := NewBatcher(0); err == nil {
		t.Fatalf("expected error for zero interval")
	}
}

func TestDecide_AbsentUntilAllReported(t *testing.T) {
	b, err := NewBatcher(500 * time.Millisecond)
	if err != nil {
		t.Fatalf("NewBatcher err=%v", err)
	}

	readings := reported(6)
	readings[4].Status = health.StatusUnknown

	if e := b.Decide(readings); e.Kind != KindAbsent {
		t.Fatalf("got kind=%d, want Absent", e.Kind)
	}
}

func TestDecide_FullThenStatusOnlyCadence(t *testing.T) {
	b, err := NewBatcher(500 * time.Millisecond)
	if err != nil {
		t.Fatalf("NewBatcher err=%v", err)
	}

	base := time.Now()
	b.now = func() time.Time { return base }

	// First eligible cycle: full (the last-full clock starts at zero).
	e := b.Decide(reported(6))
	if e.Kind != KindFull {
		t.Fatalf("first: got kind=%d, want Full", e.Kind)
	}
	if len(e.Full.MotorStatus) != 6 || len(e.Full.RPM) != 6 {
		t.Fatalf("full lists not 6-element: %+v", e.Full)
	}

	// 50ms later: status-only, one status per motor.
	b.now = func() time.Time { return base.Add(50 * time.Millisecond) }
	e = b.Decide(reported(6))
	if e.Kind != KindStatusOnly {
		t.Fatalf("early: got kind=%d, want StatusOnly", e.Kind)
	}
	if len(e.Statuses) != 6 {
		t.Fatalf("got %d statuses, want 6", len(e.Statuses))
	}

	// 500ms past the last full: full again.
	b.now = func() time.Time { return base.Add(500 * time.Millisecond) }
	if e := b.Decide(reported(6)); e.Kind != KindFull {
		t.Fatalf("late: got kind=%d, want Full", e.Kind)
	}
}

func TestDecide_StatusOnlyDoesNotResetFullClock(t *testing.T) {
	b, err := NewBatcher(500 * time.Millisecond)
	if err != nil {
		t.Fatalf("NewBatcher err=%v", err)
	}

	base := time.Now()
	b.now = func() time.Time { return base }
	if e := b.Decide(reported(2)); e.Kind != KindFull {
		t.Fatalf("got kind=%d, want Full", e.Kind)
	}

	// Several status-only cycles must not push the next full out.
	for _, off := range []time.Duration{100, 200, 300, 400} {
		b.now = func() time.Time { return base.Add(off * time.Millisecond) }
		if e := b.Decide(reported(2)); e.Kind != KindStatusOnly {
			t.Fatalf("at %vms: got kind=%d, want StatusOnly", off, e.Kind)
		}
	}

	b.now = func() time.Time { return base.Add(500 * time.Millisecond) }
	if e := b.Decide(reported(2)); e.Kind != KindFull {
		t.Fatalf("got kind=%d, want Full after the interval", e.Kind)
	}
}

func TestDecide_FullListsAreIndexAligned(t *testing.T) {
	b, err := NewBatcher(500 * time.Millisecond)
	if err != nil {
		t.Fatalf("NewBatcher err=%v", err)
	}

	readings := reported(3)
	readings[1].Status = health.StatusDown
	readings[1].RPM = 200

	e := b.Decide(readings)
	if e.Kind != KindFull {
		t.Fatalf("got kind=%d, want Full", e.Kind)
	}
	if e.Full.MotorStatus[1] != "down" || e.Full.RPM[1] != 200 {
		t.Fatalf("index alignment broken: %+v", e.Full)
	}
	if e.Full.MotorStatus[0] != "normal" || e.Full.MotorStatus[2] != "normal" {
		t.Fatalf("neighbors affected: %+v", e.Full)
	}
}
