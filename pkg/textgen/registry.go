package textgen

import (
	"maps"
	"slices"
	"sync"
)

// Registry holds generators by provider name ("ollama", "openai").
type Registry struct {
	mu         sync.RWMutex
	generators map[string]Generator
}

func NewRegistry() *Registry {
	return &Registry{generators: make(map[string]Generator)}
}

func (r *Registry) Register(provider string, g Generator) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.generators[provider] = g
}

// Get returns the generator for provider.
//
//nolint:ireturn
func (r *Registry) Get(provider string) (Generator, bool) {
	if r == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.generators[provider]

	return g, ok
}

// Providers lists registered provider names in sorted order.
func (r *Registry) Providers() []string {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.generators))
}
