package sequence

import (
	"context"
	"sync"
)

// Memory is the in-process allocator used in development and tests. A plain
// mutex gives the linearizable increment the contract demands.
type Memory struct {
	mu    sync.Mutex
	value int64
}

// NewMemory creates an allocator that continues from the given last-used
// value (0 for a fresh system).
func NewMemory(last int64) *Memory {
	return &Memory{value: last}
}

func (m *Memory) Next(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value++
	return Format(m.value), nil
}
