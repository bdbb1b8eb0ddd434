// internal/poller/builder.go
package poller

import (
	"time"

	cfg "github.com/dlvaero/esc-monitor/internal/config"
	"github.com/dlvaero/esc-monitor/internal/health"
	pserial "github.com/dlvaero/esc-monitor/internal/poller/serial"
	"github.com/dlvaero/esc-monitor/internal/registry"
	"github.com/dlvaero/esc-monitor/internal/staleness"
	"github.com/dlvaero/esc-monitor/internal/telemetry"
)

// acquireBackoff is the fixed pause between transport open attempts.
const acquireBackoff = 500 * time.Millisecond

// Build wires a Poller from validated, normalized configuration.
// The transport is NOT opened here: the poller acquires it on Run so a
// missing device at boot never kills the process.
func Build(c cfg.Config) (*Poller, error) {
	m := c.Monitor

	factory := func() (Transport, error) {
		tr, err := pserial.New(pserial.Config{
			Device:   m.Serial.Device,
			BaudRate: m.Serial.BaudRate,
		})
		if err != nil {
			return nil, err
		}
		return tr, nil
	}

	thresholds := thresholdsFromConfig(m.Checks)

	reg, err := registry.New(m.Motors.Count, thresholds)
	if err != nil {
		return nil, err
	}

	mon, err := staleness.New(
		secondsToDuration(m.Poll.HeartbeatTimeoutS),
		secondsToDuration(m.Poll.MotorTimeoutS),
	)
	if err != nil {
		return nil, err
	}

	batch, err := telemetry.NewBatcher(hzToInterval(m.Poll.FullTelemetryHz))
	if err != nil {
		return nil, err
	}

	return New(
		Config{
			MotorCount:      m.Motors.Count,
			Interval:        hzToInterval(m.Poll.FrequencyHz),
			ReadTimeout:     time.Duration(m.Serial.ReadTimeoutMs) * time.Millisecond,
			AcquireDeadline: secondsToDuration(m.Serial.AcquireTimeoutS),
			AcquireBackoff:  acquireBackoff,
		},
		factory,
		reg,
		mon,
		batch,
	)
}

func thresholdsFromConfig(c cfg.ChecksConfig) health.Thresholds {
	return health.Thresholds{
		RPM:          checkFromConfig(c.RPM),
		Voltage:      checkFromConfig(c.Voltage),
		TotalCurrent: checkFromConfig(c.TotalCurrent),
		PhaseCurrent: checkFromConfig(c.PhaseCurrent),
		MosfetTemp:   checkFromConfig(c.MosfetTemp),
	}
}

func checkFromConfig(c *cfg.CheckConfig) health.Check {
	if c == nil {
		return health.Check{}
	}
	return health.Check{Enabled: c.Enabled, Min: c.Min, Max: c.Max}
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func hzToInterval(hz float64) time.Duration {
	if hz <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / hz)
}
