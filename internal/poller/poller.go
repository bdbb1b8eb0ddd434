// internal/poller/poller.go
package poller

import (
	"bytes"
	"errors"
	"log"

	"github.com/dlvaero/esc-monitor/internal/decoder"
	"github.com/dlvaero/esc-monitor/internal/registry"
	"github.com/dlvaero/esc-monitor/internal/staleness"
	"github.com/dlvaero/esc-monitor/internal/telemetry"
)

// Poller drives one request-response cycle per tick: polling token out,
// one line in, decode, registry update, staleness sweep, batch decision.
// Single-threaded by design; it is the sole owner of the registry.
type Poller struct {
	cfg     Config
	factory TransportFactory

	reg   *registry.Registry
	mon   *staleness.Monitor
	batch *telemetry.Batcher

	// token is one ASCII '0' per motor: "send next motor in order".
	token []byte
}

// New creates a poller with immutable config.
func New(cfg Config, factory TransportFactory, reg *registry.Registry,
	mon *staleness.Monitor, batch *telemetry.Batcher) (*Poller, error) {

	if cfg.MotorCount <= 0 {
		return nil, errors.New("poller: motor count must be > 0")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if cfg.ReadTimeout <= 0 {
		return nil, errors.New("poller: read timeout must be > 0")
	}
	if cfg.AcquireDeadline <= 0 {
		return nil, errors.New("poller: acquire deadline must be > 0")
	}
	if cfg.AcquireBackoff <= 0 {
		return nil, errors.New("poller: acquire backoff must be > 0")
	}
	if factory == nil {
		return nil, errors.New("poller: transport factory required")
	}
	if reg == nil || mon == nil || batch == nil {
		return nil, errors.New("poller: registry, monitor and batcher required")
	}
	if reg.Count() != cfg.MotorCount {
		return nil, errors.New("poller: registry size does not match motor count")
	}

	return &Poller{
		cfg:     cfg,
		factory: factory,
		reg:     reg,
		mon:     mon,
		batch:   batch,
		token:   bytes.Repeat([]byte{'0'}, cfg.MotorCount),
	}, nil
}

// pollOnce performs exactly one poll cycle against an acquired transport
// and returns this cycle's emission. Every failure is handled here; nothing
// unwinds past the loop.
func (p *Poller) pollOnce(tr Transport) telemetry.Emission {
	// Discard stale input before requesting, so the line read below is the
	// answer to this cycle's token.
	if err := tr.ClearInput(); err != nil {
		return p.cycleFailed("clear input", err)
	}

	if err := tr.Write(p.token); err != nil {
		return p.cycleFailed("write token", err)
	}

	line, err := tr.ReadLine(p.cfg.ReadTimeout)
	if err != nil {
		return p.cycleFailed("read", err)
	}

	frame, err := decoder.Parse(line)
	if err != nil {
		// Expected at low frequency: the controller prints vendor status
		// lines on the same wire.
		return p.cycleFailed("decode", err)
	}

	// Any structurally valid frame counts as link liveness, regardless of
	// which motor it addresses.
	p.mon.Heartbeat()

	if err := p.reg.Apply(frame); err != nil {
		log.Printf("poller: frame rejected: %v", err)
		return telemetry.Emission{Kind: telemetry.KindAbsent}
	}

	if stale := p.mon.StaleMotors(p.reg.Snapshot()); len(stale) > 0 {
		log.Printf("poller: motors %v stopped reporting", stale)
		return telemetry.LinkError()
	}

	return p.batch.Decide(p.reg.Snapshot())
}

// cycleFailed aborts the cycle and checks the link deadline
// opportunistically. Only a blown heartbeat deadline escalates to the
// consumer; everything else is log-only.
func (p *Poller) cycleFailed(op string, err error) telemetry.Emission {
	log.Printf("poller: %s failed: %v", op, err)

	if p.mon.LinkDown() {
		log.Printf("poller: no heartbeat for more than %s", p.mon.MaxSilence())
		return telemetry.LinkError()
	}

	return telemetry.Emission{Kind: telemetry.KindAbsent}
}
