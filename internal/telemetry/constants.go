// internal/telemetry/constants.go
package telemetry

// LinkErrorMessage is the literal failure text the supervising computer
// matches on. Protocol-locked; MUST NOT be configurable.
const LinkErrorMessage = "Failed to communicate with Teensy."
