// internal/poller/serial/client.go
package serial

import (
	"errors"
	"time"

	goserial "github.com/goburrow/serial"
)

// sliceTimeout is the per-Read deadline on the underlying port. ReadLine
// and ClearInput accumulate short reads under their own budgets, so the
// port itself only ever waits one slice.
const sliceTimeout = 20 * time.Millisecond

// ErrReadTimeout means no full line arrived within the caller's deadline.
var ErrReadTimeout = errors.New("serial transport: read timeout")

// Client implements poller.Transport over a physical serial port.
// This adapter is byte-plumbing only: it assembles lines and strips CR/LF.
type Client struct {
	port goserial.Port
}

// Config is minimal transport config.
type Config struct {
	Device   string
	BaudRate int
}

// New opens the serial device. ONE attempt; the caller owns retries.
func New(cfg Config) (*Client, error) {
	if cfg.Device == "" {
		return nil, errors.New("serial transport: device required")
	}
	if cfg.BaudRate <= 0 {
		return nil, errors.New("serial transport: baud rate must be > 0")
	}

	port, err := goserial.Open(&goserial.Config{
		Address:  cfg.Device,
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  sliceTimeout,
	})
	if err != nil {
		return nil, err
	}

	return &Client{port: port}, nil
}

// Close closes the serial port.
func (c *Client) Close() error {
	if c == nil || c.port == nil {
		return nil
	}
	return c.port.Close()
}

// ClearInput drains queued inbound bytes until the port runs dry.
func (c *Client) ClearInput() error {
	var buf [256]byte
	for {
		n, err := c.port.Read(buf[:])
		if err != nil {
			if errors.Is(err, goserial.ErrTimeout) {
				return nil
			}
			return err
		}
		if n == 0 {
			return nil
		}
	}
}

// Write sends p fully.
func (c *Client) Write(p []byte) error {
	for len(p) > 0 {
		n, err := c.port.Write(p)
		if err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}

// ReadLine assembles one LF-terminated line, dropping CR, within timeout.
// Byte-at-a-time on purpose: reading past the terminator would eat the
// start of the next cycle's line.
func (c *Client) ReadLine(timeout time.Duration) ([]byte, error) {
	deadline := time.Now().Add(timeout)
	line := make([]byte, 0, 128)

	var b [1]byte
	for {
		n, err := c.port.Read(b[:])
		if err != nil && !errors.Is(err, goserial.ErrTimeout) {
			return nil, err
		}
		if n > 0 {
			switch b[0] {
			case '\n':
				return line, nil
			case '\r':
				// stripped
			default:
				line = append(line, b[0])
			}
		}
		if time.Now().After(deadline) {
			return nil, ErrReadTimeout
		}
	}
}
