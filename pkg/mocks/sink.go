package mocks

import (
	"sync"

	"github.com/user/sparkstudio/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink that keeps saved
// output in memory.
type DebugSink struct {
	enabled bool

	mu   sync.Mutex
	HTML map[string][]byte
	Vars map[string][]byte
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled: enabled,
		HTML:    make(map[string][]byte),
		Vars:    make(map[string][]byte),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveHTML(name string, html []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.HTML[name] = html
	return nil
}

func (m *DebugSink) SaveVars(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Vars[name] = data
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
