package memory

import (
	"context"
	"sync"

	"github.com/aiflow/aiflow/pkg/models"
	"github.com/aiflow/aiflow/pkg/persistence"
)

// CanvasRepository maps a workflow id to its canvas.
// Deleting a workflow cascades to its canvas.
type CanvasRepository struct {
	mu        sync.RWMutex
	workflows *WorkflowRepository
	canvases  map[int64]*models.WorkflowCanvas
}

// NewCanvasRepository creates a canvas store bound to the given workflow registry.
func NewCanvasRepository(workflows *WorkflowRepository) *CanvasRepository {
	repo := &CanvasRepository{
		workflows: workflows,
		canvases:  make(map[int64]*models.WorkflowCanvas),
	}

	workflows.onDelete = repo.remove

	return repo
}

func (r *CanvasRepository) GetByWorkflowID(_ context.Context, workflowID int64) (*models.WorkflowCanvas, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	canvas, ok := r.canvases[workflowID]
	if !ok {
		return nil, nil
	}

	return canvas.Clone(), nil
}

func (r *CanvasRepository) Save(
	_ context.Context,
	workflowID int64,
	canvas *models.WorkflowCanvas,
) (*models.WorkflowCanvas, error) {
	r.workflows.mu.RLock()
	defer r.workflows.mu.RUnlock()

	if !r.workflows.existsLocked(workflowID) {
		return nil, persistence.NewWorkflowError("SaveCanvas", workflowID, persistence.ErrWorkflowNotFound)
	}

	if canvas == nil {
		canvas = &models.WorkflowCanvas{}
	}

	stored := canvas.Clone()
	stored.WorkflowID = workflowID

	r.mu.Lock()
	r.canvases[workflowID] = stored
	r.mu.Unlock()

	return stored.Clone(), nil
}

// remove is called by the workflow registry with its lock held.
func (r *CanvasRepository) remove(workflowID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.canvases, workflowID)
}
