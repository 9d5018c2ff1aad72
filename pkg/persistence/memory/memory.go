// Package memory provides in-memory persistence for workflows, canvases and AI modules.
package memory

import (
	"context"

	"github.com/aiflow/aiflow/pkg/persistence"
	"github.com/aiflow/aiflow/pkg/persistence/sequence"
)

// Persistence implements persistence.Persistence on top of in-memory registries.
type Persistence struct {
	ids       sequence.Allocator
	workflows *WorkflowRepository
	canvases  *CanvasRepository
	modules   *AIModuleRepository
}

// NewPersistence creates in-memory registries backed by a process-local allocator.
func NewPersistence() *Persistence {
	return NewPersistenceWithAllocator(sequence.NewMemory())
}

// NewPersistenceWithAllocator creates in-memory registries sharing the given allocator.
func NewPersistenceWithAllocator(ids sequence.Allocator) *Persistence {
	workflows := NewWorkflowRepository(ids)
	canvases := NewCanvasRepository(workflows)

	return &Persistence{
		ids:       ids,
		workflows: workflows,
		canvases:  canvases,
		modules:   NewAIModuleRepository(ids),
	}
}

func (p *Persistence) WorkflowRepository() persistence.WorkflowRepository {
	return p.workflows
}

func (p *Persistence) CanvasRepository() persistence.CanvasRepository {
	return p.canvases
}

func (p *Persistence) AIModuleRepository() persistence.AIModuleRepository {
	return p.modules
}

func (p *Persistence) HealthCheck(_ context.Context) error {
	return nil
}

func (p *Persistence) Close(_ context.Context) error {
	return p.ids.Close()
}
