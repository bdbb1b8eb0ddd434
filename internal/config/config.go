// internal/config/config.go
package config

type Config struct {
	Monitor MonitorConfig `yaml:"monitor"`
}

type MonitorConfig struct {
	Serial SerialConfig `yaml:"serial"`
	Motors MotorsConfig `yaml:"motors"`
	Poll   PollConfig   `yaml:"poll"`
	Checks ChecksConfig `yaml:"checks"`
	MQTT   MQTTConfig   `yaml:"mqtt"`
}

// ---- SERIAL LINK ----

type SerialConfig struct {
	Device        string `yaml:"device"`
	BaudRate      int    `yaml:"baud_rate"`
	ReadTimeoutMs int    `yaml:"read_timeout_ms"`

	// AcquireTimeoutS is how long startup acquisition may fail before link
	// errors are emitted. Acquisition retries forever regardless.
	AcquireTimeoutS float64 `yaml:"acquire_timeout_s"`
}

// ---- MOTORS ----

type MotorsConfig struct {
	Count int `yaml:"count"`
}

// ---- CADENCE & DEADLINES ----

type PollConfig struct {
	FrequencyHz     float64 `yaml:"frequency_hz"`
	FullTelemetryHz float64 `yaml:"full_telemetry_hz"`

	HeartbeatTimeoutS float64 `yaml:"heartbeat_timeout_s"`
	MotorTimeoutS     float64 `yaml:"motor_timeout_s"` // defaults to heartbeat deadline
}

// ---- HEALTH CHECKS ----

// CheckConfig is one toggleable min/max bound check (inclusive both ends).
type CheckConfig struct {
	Enabled bool    `yaml:"enabled"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
}

// ChecksConfig lists every implemented check. A nil check takes its
// deployment default; all five stay individually toggleable.
type ChecksConfig struct {
	RPM          *CheckConfig `yaml:"rpm"`
	Voltage      *CheckConfig `yaml:"voltage"`
	TotalCurrent *CheckConfig `yaml:"total_current"`
	PhaseCurrent *CheckConfig `yaml:"phase_current"`
	MosfetTemp   *CheckConfig `yaml:"mosfet_temp"`
}

// ---- MQTT SINK ----

type MQTTConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Broker   string `yaml:"broker"`
	ClientID string `yaml:"client_id"`
	Topic    string `yaml:"topic"`
	QoS      int    `yaml:"qos"`
}
