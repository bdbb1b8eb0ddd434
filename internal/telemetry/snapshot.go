// internal/telemetry/snapshot.go
package telemetry

import "github.com/dlvaero/esc-monitor/internal/health"

// Kind discriminates what one cycle emits.
type Kind uint8

const (
	// KindAbsent means nothing is ready to send this cycle.
	KindAbsent Kind = iota

	// KindStatusOnly is the minimal per-motor health broadcast.
	KindStatusOnly

	// KindFull is the complete per-metric broadcast of all motors.
	KindFull

	// KindLinkError signals link-level or per-motor communication failure.
	KindLinkError
)

// Emission is the immutable output of one poll cycle.
// Constructed fresh each cycle from a registry snapshot; never persisted.
type Emission struct {
	Kind Kind

	Statuses []health.Status // KindStatusOnly
	Full     *Full           // KindFull
	Message  string          // KindLinkError
}

// Full is the complete telemetry snapshot. Field order is protocol-locked:
// the supervising computer relies on these exact keys, each list holding
// exactly one entry per motor, index-aligned with motor number.
type Full struct {
	MotorStatus  []string  `json:"motorStatusList"`
	ThrottleIn   []float64 `json:"throttleInPercentList"`
	ThrottleOut  []float64 `json:"throttleOutPercentList"`
	Voltage      []float64 `json:"voltageList"`
	PhaseCurrent []float64 `json:"phaseCurrentList"`
	RPM          []float64 `json:"motorRPMList"`
	TotalCurrent []float64 `json:"totalCurrentList"`
	MosfetTemp   []float64 `json:"mosfetTempList"`
}

// motorStatus is one status-only message, tagged with a 1-based motor number.
type motorStatus struct {
	Motor  string `json:"motor"`
	Status string `json:"status"`
}

// linkError is the single consumer-visible failure message.
type linkError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// LinkError builds the communication-failure emission.
func LinkError() Emission {
	return Emission{Kind: KindLinkError, Message: LinkErrorMessage}
}
