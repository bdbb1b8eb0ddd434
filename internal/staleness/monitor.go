// internal/staleness/monitor.go
package staleness

import (
	"errors"
	"time"

	"github.com/dlvaero/esc-monitor/internal/registry"
)

// Monitor tracks the two liveness deadlines of the link:
// total silence (no valid frame from any motor) and per-motor staleness.
// Both are measured against the monotonic clock.
type Monitor struct {
	maxSilence  time.Duration // link-level heartbeat deadline
	maxNoUpdate time.Duration // per-motor update deadline

	lastHeartbeat time.Time
	now           func() time.Time
}

// New creates a monitor whose heartbeat clock starts at construction time.
func New(maxSilence, maxNoUpdate time.Duration) (*Monitor, error) {
	if maxSilence <= 0 {
		return nil, errors.New("staleness: link deadline must be > 0")
	}
	if maxNoUpdate <= 0 {
		return nil, errors.New("staleness: motor deadline must be > 0")
	}

	m := &Monitor{
		maxSilence:  maxSilence,
		maxNoUpdate: maxNoUpdate,
		now:         time.Now,
	}
	m.lastHeartbeat = m.now()

	return m, nil
}

// Heartbeat records a structurally valid frame, regardless of which motor
// it addresses.
func (m *Monitor) Heartbeat() {
	m.lastHeartbeat = m.now()
}

// LinkDown reports whether link silence has exceeded the deadline.
// Checked opportunistically on failure paths, not on its own timer.
func (m *Monitor) LinkDown() bool {
	return m.now().Sub(m.lastHeartbeat) > m.maxSilence
}

// MaxSilence returns the configured link deadline.
func (m *Monitor) MaxSilence() time.Duration {
	return m.maxSilence
}

// StaleMotors returns the indices of motors whose latest frame was not an
// update and whose last update is older than the per-motor deadline.
// It never touches a motor's status; that is the evaluator's job.
func (m *Monitor) StaleMotors(readings []registry.Reading) []int {
	now := m.now()

	var stale []int
	for i, r := range readings {
		if r.Updated {
			continue
		}
		if now.Sub(r.LastSeenAt) >= m.maxNoUpdate {
			stale = append(stale, i)
		}
	}
	return stale
}
