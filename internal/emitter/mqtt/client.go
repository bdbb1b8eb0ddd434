// internal/emitter/mqtt/client.go
package mqtt

import (
	"errors"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

// Client publishes telemetry messages to the supervising computer's broker.
// Delivery only: payloads are opaque bytes.
type Client struct {
	cli     paho.Client
	topic   string
	qos     byte
	timeout time.Duration
}

// Config is minimal broker config.
type Config struct {
	Broker   string
	ClientID string
	Topic    string
	QoS      byte
	Timeout  time.Duration
}

// New creates a connected broker client. The paho retry options keep
// dialing in the background if the broker is unreachable, so a down broker
// never blocks startup past the first connect window.
func New(cfg Config) (*Client, error) {
	if cfg.Broker == "" {
		return nil, errors.New("mqtt emitter: broker required")
	}
	if cfg.Topic == "" {
		return nil, errors.New("mqtt emitter: topic required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}

	opts := paho.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(5 * time.Second)

	cli := paho.NewClient(opts)
	if token := cli.Connect(); token.WaitTimeout(cfg.Timeout) && token.Error() != nil {
		return nil, fmt.Errorf("mqtt emitter: connect: %w", token.Error())
	}

	return &Client{
		cli:     cli,
		topic:   cfg.Topic,
		qos:     cfg.QoS,
		timeout: cfg.Timeout,
	}, nil
}

// Emit publishes each message to the configured topic, in order.
// Waits are bounded so a slow broker cannot stall the emission consumer
// indefinitely.
func (c *Client) Emit(msgs [][]byte) error {
	for _, m := range msgs {
		token := c.cli.Publish(c.topic, c.qos, false, m)
		if token.WaitTimeout(c.timeout) && token.Error() != nil {
			return fmt.Errorf("mqtt emitter: publish: %w", token.Error())
		}
	}
	return nil
}

// Close disconnects from the broker.
func (c *Client) Close() error {
	if c == nil || c.cli == nil {
		return nil
	}
	c.cli.Disconnect(250)
	return nil
}
