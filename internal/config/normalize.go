// internal/config/normalize.go
package config

// Deployment defaults, matching the bench values measured on one DLV-1
// motor (08/09/2022) and the reference companion-computer setup.
const (
	DefaultDevice          = "/dev/ttyACM0"
	DefaultBaudRate        = 1000000
	DefaultReadTimeoutMs   = 2000
	DefaultAcquireTimeoutS = 5.0

	DefaultMotorCount = 6

	DefaultPollFrequencyHz   = 10.0
	DefaultFullTelemetryHz   = 2.0
	DefaultHeartbeatTimeoutS = 5.0

	DefaultMQTTClientID = "esc-monitor"
	DefaultMQTTTopic    = "aircraft/motor/esc/telemetry"
)

// Default checks: only the RPM bound check ships enabled; the others are
// implemented and toggleable but off by default.
func defaultChecks() ChecksConfig {
	return ChecksConfig{
		RPM:          &CheckConfig{Enabled: true, Min: 350, Max: 10000},
		Voltage:      &CheckConfig{Enabled: false, Min: 18, Max: 25.2},
		TotalCurrent: &CheckConfig{Enabled: false, Min: 1.4, Max: 18},
		PhaseCurrent: &CheckConfig{Enabled: false, Min: 0.18, Max: 9},
		MosfetTemp:   &CheckConfig{Enabled: false, Min: 20, Max: 75},
	}
}

// Normalize applies post-validation defaulting.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	m := &cfg.Monitor

	if m.Serial.Device == "" {
		m.Serial.Device = DefaultDevice
	}
	if m.Serial.BaudRate == 0 {
		m.Serial.BaudRate = DefaultBaudRate
	}
	if m.Serial.ReadTimeoutMs == 0 {
		m.Serial.ReadTimeoutMs = DefaultReadTimeoutMs
	}
	if m.Serial.AcquireTimeoutS == 0 {
		m.Serial.AcquireTimeoutS = DefaultAcquireTimeoutS
	}

	if m.Motors.Count == 0 {
		m.Motors.Count = DefaultMotorCount
	}

	if m.Poll.FrequencyHz == 0 {
		m.Poll.FrequencyHz = DefaultPollFrequencyHz
	}
	if m.Poll.FullTelemetryHz == 0 {
		m.Poll.FullTelemetryHz = DefaultFullTelemetryHz
	}
	if m.Poll.HeartbeatTimeoutS == 0 {
		m.Poll.HeartbeatTimeoutS = DefaultHeartbeatTimeoutS
	}
	// The per-motor deadline inherits the link deadline when unset.
	if m.Poll.MotorTimeoutS == 0 {
		m.Poll.MotorTimeoutS = m.Poll.HeartbeatTimeoutS
	}

	def := defaultChecks()
	if m.Checks.RPM == nil {
		m.Checks.RPM = def.RPM
	}
	if m.Checks.Voltage == nil {
		m.Checks.Voltage = def.Voltage
	}
	if m.Checks.TotalCurrent == nil {
		m.Checks.TotalCurrent = def.TotalCurrent
	}
	if m.Checks.PhaseCurrent == nil {
		m.Checks.PhaseCurrent = def.PhaseCurrent
	}
	if m.Checks.MosfetTemp == nil {
		m.Checks.MosfetTemp = def.MosfetTemp
	}

	if m.MQTT.Enabled {
		if m.MQTT.ClientID == "" {
			m.MQTT.ClientID = DefaultMQTTClientID
		}
		if m.MQTT.Topic == "" {
			m.MQTT.Topic = DefaultMQTTTopic
		}
	}
}
