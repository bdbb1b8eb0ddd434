// internal/poller/runner.go
package poller

import (
	"context"
	"log"
	"time"

	"github.com/dlvaero/esc-monitor/internal/telemetry"
)

// Run acquires the transport, then drives the poll cadence until ctx ends.
// Emissions are sent in cycle order, at most one per cycle; Absent cycles
// send nothing.
func (p *Poller) Run(ctx context.Context, out chan<- telemetry.Emission) {
	tr := p.acquire(ctx, out)
	if tr == nil {
		return
	}
	defer tr.Close()

	for {
		start := time.Now()

		if e := p.pollOnce(tr); e.Kind != telemetry.KindAbsent {
			select {
			case out <- e:
			case <-ctx.Done():
				return
			}
		}

		// Sleep the remainder of the period. An overrunning cycle starts
		// the next one immediately: no catch-up, no skipped cycles.
		rest := p.cfg.Interval - time.Since(start)
		if rest < 0 {
			rest = 0
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(rest):
		}
	}
}

// acquire blocks until the transport opens. It never gives up: once the
// acquisition deadline has passed, every further failure also emits a link
// error. Returns nil only on context cancellation.
func (p *Poller) acquire(ctx context.Context, out chan<- telemetry.Emission) Transport {
	lastOK := time.Now()

	for {
		tr, err := p.factory()
		if err == nil {
			return tr
		}
		log.Printf("poller: transport unavailable: %v", err)

		if time.Since(lastOK) >= p.cfg.AcquireDeadline {
			select {
			case out <- telemetry.LinkError():
			case <-ctx.Done():
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(p.cfg.AcquireBackoff):
		}
	}
}
