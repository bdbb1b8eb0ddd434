// internal/emitter/emitter.go
package emitter

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Stdout writes each message as one line. In the reference deployment the
// flight computer reads this process's standard output directly.
type Stdout struct {
	mu sync.Mutex
	w  io.Writer
}

// NewStdout creates a line-oriented writer emitter.
func NewStdout(w io.Writer) *Stdout {
	return &Stdout{w: w}
}

func (s *Stdout) Emit(msgs [][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range msgs {
		if _, err := s.w.Write(m); err != nil {
			return fmt.Errorf("emitter: stdout write: %w", err)
		}
		if _, err := s.w.Write([]byte{'\n'}); err != nil {
			return fmt.Errorf("emitter: stdout write: %w", err)
		}
	}
	return nil
}

// Multi fans one emission out to every configured sink. Every sink sees
// every message; failures are collected, not short-circuited.
type Multi struct {
	sinks []Emitter
}

// NewMulti creates a fan-out emitter.
func NewMulti(sinks ...Emitter) *Multi {
	return &Multi{sinks: sinks}
}

func (m *Multi) Emit(msgs [][]byte) error {
	var errs []string

	for _, s := range m.sinks {
		if err := s.Emit(msgs); err != nil {
			errs = append(errs, err.Error())
		}
	}

	if len(errs) > 0 {
		return errors.New("emitter: " + strings.Join(errs, " | "))
	}
	return nil
}
