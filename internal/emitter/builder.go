// internal/emitter/builder.go
package emitter

import (
	"os"
	"time"

	cfg "github.com/dlvaero/esc-monitor/internal/config"
	emqtt "github.com/dlvaero/esc-monitor/internal/emitter/mqtt"
)

// Build assembles the sink chain: stdout always, MQTT when enabled.
// The returned closer releases whatever the chain owns.
func Build(c cfg.MQTTConfig) (Emitter, func() error, error) {
	sinks := []Emitter{NewStdout(os.Stdout)}
	closeAll := func() error { return nil }

	if c.Enabled {
		cli, err := emqtt.New(emqtt.Config{
			Broker:   c.Broker,
			ClientID: c.ClientID,
			Topic:    c.Topic,
			QoS:      byte(c.QoS),
			Timeout:  2 * time.Second,
		})
		if err != nil {
			return nil, nil, err
		}
		sinks = append(sinks, cli)
		closeAll = cli.Close
	}

	return NewMulti(sinks...), closeAll, nil
}
