// cmd/escmonitor/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dlvaero/esc-monitor/internal/config"
	"github.com/dlvaero/esc-monitor/internal/emitter"
	"github.com/dlvaero/esc-monitor/internal/poller"
	"github.com/dlvaero/esc-monitor/internal/telemetry"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: escmonitor <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --------------------
	// Build pipeline
	// --------------------

	emit, closeEmitter, err := emitter.Build(cfg.Monitor.MQTT)
	if err != nil {
		log.Fatalf("emitter build failed: %v", err)
	}
	defer closeEmitter()

	p, err := poller.Build(*cfg)
	if err != nil {
		log.Fatalf("poller build failed: %v", err)
	}

	// Emissions cross a buffered channel of immutable snapshots so a slow
	// sink cannot stall the poll cadence. The single consumer preserves
	// cycle order.
	out := make(chan telemetry.Emission, 16)

	go p.Run(ctx, out)

	// --------------------
	// Emission consumer
	// --------------------

	for {
		select {
		case <-ctx.Done():
			return

		case e := <-out:
			msgs, err := telemetry.Encode(e)
			if err != nil {
				log.Printf("encode failed: %v", err)
				continue
			}
			if err := emit.Emit(msgs); err != nil {
				log.Printf("emit failed: %v", err)
			}
		}
	}
}
