// Package persistence provides the storage abstraction for workflows, canvases and AI modules.
package persistence

import (
	"context"

	"github.com/aiflow/aiflow/pkg/models"
)

// Persistence groups the registries used by the service layer.
type Persistence interface {
	WorkflowRepository() WorkflowRepository
	CanvasRepository() CanvasRepository
	AIModuleRepository() AIModuleRepository

	HealthCheck(ctx context.Context) error
	Close(ctx context.Context) error
}

// WorkflowRepository stores Workflow records.
// Lookups return a nil record, not an error, when nothing matches.
type WorkflowRepository interface {
	List(ctx context.Context) ([]*models.Workflow, error)
	Create(ctx context.Context, name, description string, steps []string) (*models.Workflow, error)
	GetByID(ctx context.Context, id int64) (*models.Workflow, error)
	Update(ctx context.Context, id int64, update models.WorkflowUpdate) (*models.Workflow, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// CanvasRepository stores one canvas per workflow.
type CanvasRepository interface {
	GetByWorkflowID(ctx context.Context, workflowID int64) (*models.WorkflowCanvas, error)
	// Save fails with ErrWorkflowNotFound when the workflow does not exist.
	Save(ctx context.Context, workflowID int64, canvas *models.WorkflowCanvas) (*models.WorkflowCanvas, error)
}

// AIModuleRepository stores AIModule records.
type AIModuleRepository interface {
	List(ctx context.Context) ([]*models.AIModule, error)
	Create(ctx context.Context, name, moduleType, description string, config map[string]any) (*models.AIModule, error)
	GetByID(ctx context.Context, id int64) (*models.AIModule, error)
}
