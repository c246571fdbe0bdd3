package slot

import (
	"context"
	"sync"
)

// Memory is an in-process slot for tests and ephemeral runs.
type Memory struct {
	mu    sync.RWMutex
	data  []byte
	found bool
	saves int
}

// NewMemory returns an empty in-memory slot.
func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Driver() Driver { return DriverMemory }

// Load returns a copy of the stored document.
func (m *Memory) Load(_ context.Context) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.found {
		return nil, false, nil
	}
	return append([]byte(nil), m.data...), true, nil
}

// Save replaces the stored document.
func (m *Memory) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	m.found = true
	m.saves++
	return nil
}

// Saves reports how many times Save was called. Test hook.
func (m *Memory) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}
