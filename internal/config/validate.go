// internal/config/validate.go
package config

import "fmt"

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration; zero values mean "use the default" and
// are filled in by Normalize.
func Validate(cfg *Config) error {
	m := cfg.Monitor

	// ------------------------------------------------------------
	// SERIAL LINK
	// ------------------------------------------------------------

	if m.Serial.BaudRate < 0 {
		return fmt.Errorf("serial: baud_rate must not be negative, got %d", m.Serial.BaudRate)
	}
	if m.Serial.ReadTimeoutMs < 0 {
		return fmt.Errorf("serial: read_timeout_ms must not be negative, got %d", m.Serial.ReadTimeoutMs)
	}
	if m.Serial.AcquireTimeoutS < 0 {
		return fmt.Errorf("serial: acquire_timeout_s must not be negative, got %v", m.Serial.AcquireTimeoutS)
	}

	// ------------------------------------------------------------
	// MOTORS & CADENCE
	// ------------------------------------------------------------

	if m.Motors.Count < 0 {
		return fmt.Errorf("motors: count must not be negative, got %d", m.Motors.Count)
	}
	if m.Poll.FrequencyHz < 0 {
		return fmt.Errorf("poll: frequency_hz must not be negative, got %v", m.Poll.FrequencyHz)
	}
	if m.Poll.FullTelemetryHz < 0 {
		return fmt.Errorf("poll: full_telemetry_hz must not be negative, got %v", m.Poll.FullTelemetryHz)
	}
	if m.Poll.HeartbeatTimeoutS < 0 {
		return fmt.Errorf("poll: heartbeat_timeout_s must not be negative, got %v", m.Poll.HeartbeatTimeoutS)
	}
	if m.Poll.MotorTimeoutS < 0 {
		return fmt.Errorf("poll: motor_timeout_s must not be negative, got %v", m.Poll.MotorTimeoutS)
	}

	// ------------------------------------------------------------
	// HEALTH CHECKS
	// ------------------------------------------------------------

	checks := map[string]*CheckConfig{
		"rpm":           m.Checks.RPM,
		"voltage":       m.Checks.Voltage,
		"total_current": m.Checks.TotalCurrent,
		"phase_current": m.Checks.PhaseCurrent,
		"mosfet_temp":   m.Checks.MosfetTemp,
	}
	for name, c := range checks {
		if c == nil {
			continue
		}
		if c.Min > c.Max {
			return fmt.Errorf("checks: %s: min %v greater than max %v", name, c.Min, c.Max)
		}
	}

	// ------------------------------------------------------------
	// MQTT SINK (OPT-IN)
	// ------------------------------------------------------------

	if m.MQTT.Enabled {
		if m.MQTT.Broker == "" {
			return fmt.Errorf("mqtt: enabled but broker is empty")
		}
		if m.MQTT.QoS < 0 || m.MQTT.QoS > 2 {
			return fmt.Errorf("mqtt: qos must be 0, 1 or 2, got %d", m.MQTT.QoS)
		}
	}

	return nil
}
