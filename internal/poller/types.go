// internal/poller/types.go
package poller

import "time"

// Transport abstracts the half-duplex serial link the poller drives.
// The poller depends on lines only; byte-level framing is the transport's
// problem.
type Transport interface {
	// ClearInput discards anything queued on the inbound side.
	ClearInput() error

	// Write sends the polling token.
	Write(p []byte) error

	// ReadLine returns one line with CR/LF stripped. It must return within
	// the timeout, never block indefinitely.
	ReadLine(timeout time.Duration) ([]byte, error)

	Close() error
}

// TransportFactory opens the transport. ONE attempt per call; the poller
// owns the retry policy.
type TransportFactory func() (Transport, error)

// Config is the minimal runtime config the poll loop needs.
type Config struct {
	MotorCount  int
	Interval    time.Duration // target poll period
	ReadTimeout time.Duration // bounded wait for one line

	// AcquireDeadline is how long startup acquisition may fail silently
	// before each further failure also emits a link error. Acquisition
	// itself never gives up.
	AcquireDeadline time.Duration
	AcquireBackoff  time.Duration
}
