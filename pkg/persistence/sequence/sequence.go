// Package sequence issues strictly increasing identifiers per entity kind.
package sequence

import (
	"context"
	"sync"
)

// Entity kinds with their own counter.
const (
	KindWorkflow = "workflow"
	KindAIModule = "ai_module"
)

// Allocator hands out identifiers. Identifiers for one kind are unique and strictly increasing.
type Allocator interface {
	Next(ctx context.Context, kind string) (int64, error)
	Close() error
}

// Memory is a process-local allocator. Counters start at 1 and reset on restart.
type Memory struct {
	mu       sync.Mutex
	counters map[string]int64
}

// NewMemory returns an allocator with every counter at zero.
func NewMemory() *Memory {
	return &Memory{counters: make(map[string]int64)}
}

// Next increments the counter for kind and returns the new value.
func (m *Memory) Next(_ context.Context, kind string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counters[kind]++

	return m.counters[kind], nil
}

func (m *Memory) Close() error {
	return nil
}
