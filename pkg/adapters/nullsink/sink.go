// Package nullsink provides a no-op debug sink implementation.
package nullsink

import "github.com/user/sparkstudio/pkg/ports"

// Sink is a no-op implementation of ports.DebugSink.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveHTML does nothing.
func (s *Sink) SaveHTML(name string, html []byte) error {
	return nil
}

// SaveVars does nothing.
func (s *Sink) SaveVars(name string, data []byte) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
