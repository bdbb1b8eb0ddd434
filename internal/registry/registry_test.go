// internal/registry/registry_test.go
package registry

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/dlvaero/esc-monitor/internal/decoder"
	"github.com/dlvaero/esc-monitor/internal/health"
)

func rpmThresholds() health.Thresholds {
	return health.Thresholds{RPM: health.Check{Enabled: true, Min: 350, Max: 10000}}
}

func frame(motor int, updated bool, rpm float64) decoder.Frame {
	return decoder.Frame{
		Motor:         motor,
		Updated:       updated,
		TimestampMs:   1000,
		ThrottleIn:    50,
		ThrottleOut:   48,
		RPM:           rpm,
		Voltage:       22.1,
		TotalCurrent:  10.0,
		PhaseCurrent:  3.2,
		MosfetTemp:    40,
		CapacitorTemp: 30,
	}
}

func TestNew_RejectsBadCount(t *testing.T) {
	if _, err := New(0, rpmThresholds()); err == nil {
		t.Fatalf("expected error for count=0")
	}
}

func TestApply_UpdatesExactlyOneMotor(t *testing.T) {
	r, err := New(6, rpmThresholds())
	if err != nil {
		t.Fatalf("New err=%v", err)
	}

	before := r.Snapshot()

	if err := r.Apply(frame(2, true, 5000)); err != nil {
		t.Fatalf("Apply err=%v", err)
	}

	after := r.Snapshot()
	for i := range after {
		if i == 2 {
			continue
		}
		if !reflect.DeepEqual(before[i], after[i]) {
			t.Fatalf("motor %d mutated by a frame addressed to motor 2", i)
		}
	}

	m := after[2]
	if !m.Seen || !m.Updated || m.RPM != 5000 || m.Status != health.StatusNormal {
		t.Fatalf("motor 2 not applied: %+v", m)
	}
}

func TestApply_OutOfRangeLeavesTableUntouched(t *testing.T) {
	r, err := New(6, rpmThresholds())
	if err != nil {
		t.Fatalf("New err=%v", err)
	}

	before := r.Snapshot()

	for _, motor := range []int{-1, 6, 100} {
		if err := r.Apply(frame(motor, true, 5000)); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("motor %d: got err=%v, want ErrIndexOutOfRange", motor, err)
		}
	}

	if !reflect.DeepEqual(before, r.Snapshot()) {
		t.Fatalf("registry mutated by out-of-range frames")
	}
}

func TestApply_StatusFollowsHealthChecks(t *testing.T) {
	r, err := New(6, rpmThresholds())
	if err != nil {
		t.Fatalf("New err=%v", err)
	}

	if err := r.Apply(frame(0, true, 5000)); err != nil {
		t.Fatalf("Apply err=%v", err)
	}
	if got := r.Snapshot()[0].Status; got != health.StatusNormal {
		t.Fatalf("rpm=5000: got %v, want normal", got)
	}

	if err := r.Apply(frame(0, true, 200)); err != nil {
		t.Fatalf("Apply err=%v", err)
	}
	if got := r.Snapshot()[0].Status; got != health.StatusDown {
		t.Fatalf("rpm=200: got %v, want down", got)
	}
}

func TestApply_Idempotent(t *testing.T) {
	r, err := New(6, rpmThresholds())
	if err != nil {
		t.Fatalf("New err=%v", err)
	}

	fixed := time.Now()
	r.now = func() time.Time { return fixed }

	f := frame(1, true, 5000)
	if err := r.Apply(f); err != nil {
		t.Fatalf("Apply err=%v", err)
	}
	first := r.Snapshot()[1]

	if err := r.Apply(f); err != nil {
		t.Fatalf("Apply err=%v", err)
	}
	second := r.Snapshot()[1]

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("re-applying the same frame changed the reading:\n%+v\n%+v", first, second)
	}
}

func TestApply_NonUpdatedFrameStillOverwritesMetrics(t *testing.T) {
	r, err := New(6, rpmThresholds())
	if err != nil {
		t.Fatalf("New err=%v", err)
	}

	if err := r.Apply(frame(0, true, 5000)); err != nil {
		t.Fatalf("Apply err=%v", err)
	}
	seenAt := r.Snapshot()[0].LastSeenAt

	// Repeated frame: metrics overwrite, staleness clock untouched.
	f := frame(0, false, 200)
	if err := r.Apply(f); err != nil {
		t.Fatalf("Apply err=%v", err)
	}

	m := r.Snapshot()[0]
	if m.RPM != 200 {
		t.Fatalf("rpm: got %v, want 200 (non-updated frames still overwrite)", m.RPM)
	}
	if !m.LastSeenAt.Equal(seenAt) {
		t.Fatalf("LastSeenAt refreshed by a non-updated frame")
	}
	// Out-of-bounds value on a non-updated frame must not flag down.
	if m.Status != health.StatusNormal {
		t.Fatalf("status: got %v, want normal", m.Status)
	}
}

func TestAllReported_Progression(t *testing.T) {
	r, err := New(6, rpmThresholds())
	if err != nil {
		t.Fatalf("New err=%v", err)
	}

	// Scenario: only motor 0 has reported.
	if err := r.Apply(frame(0, true, 5000)); err != nil {
		t.Fatalf("Apply err=%v", err)
	}
	if r.AllReported() {
		t.Fatalf("AllReported true with motors 1-5 unset")
	}

	for i := 1; i < 6; i++ {
		if err := r.Apply(frame(i, true, 5000)); err != nil {
			t.Fatalf("Apply motor %d err=%v", i, err)
		}
	}
	if !r.AllReported() {
		t.Fatalf("AllReported false after every motor reported")
	}

	// Stays true even if a motor later goes stale (non-updated frame).
	if err := r.Apply(frame(3, false, 5000)); err != nil {
		t.Fatalf("Apply err=%v", err)
	}
	if !r.AllReported() {
		t.Fatalf("AllReported dropped back to false")
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	r, err := New(2, rpmThresholds())
	if err != nil {
		t.Fatalf("New err=%v", err)
	}

	snap := r.Snapshot()
	snap[0].RPM = 9999

	if r.Snapshot()[0].RPM == 9999 {
		t.Fatalf("snapshot aliases live registry state")
	}
}
