package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/aiflow/aiflow/pkg/models"
	"github.com/aiflow/aiflow/pkg/persistence/sequence"
)

// WorkflowRepository keeps workflows in creation order.
// Lock order when both are needed: WorkflowRepository.mu, then CanvasRepository.mu.
type WorkflowRepository struct {
	mu        sync.RWMutex
	ids       sequence.Allocator
	workflows []*models.Workflow

	// onDelete runs with mu held after a workflow is removed.
	onDelete func(id int64)
}

// NewWorkflowRepository creates a new workflow repository.
func NewWorkflowRepository(ids sequence.Allocator) *WorkflowRepository {
	return &WorkflowRepository{
		ids:       ids,
		workflows: make([]*models.Workflow, 0),
	}
}

func (r *WorkflowRepository) List(_ context.Context) ([]*models.Workflow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Workflow, 0, len(r.workflows))
	for _, workflow := range r.workflows {
		result = append(result, workflow.Clone())
	}

	return result, nil
}

func (r *WorkflowRepository) Create(ctx context.Context, name, description string, steps []string) (*models.Workflow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Allocated under the lock so that list order matches identifier order.
	id, err := r.ids.Next(ctx, sequence.KindWorkflow)
	if err != nil {
		return nil, err
	}

	if steps == nil {
		steps = []string{}
	}

	workflow := &models.Workflow{
		ID:          id,
		Name:        name,
		Description: description,
		Steps:       append([]string{}, steps...),
	}

	r.workflows = append(r.workflows, workflow)

	return workflow.Clone(), nil
}

func (r *WorkflowRepository) GetByID(_ context.Context, id int64) (*models.Workflow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, nil
	}

	return r.workflows[idx].Clone(), nil
}

func (r *WorkflowRepository) Update(_ context.Context, id int64, update models.WorkflowUpdate) (*models.Workflow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, nil
	}

	updated := r.workflows[idx].Clone()
	update.Apply(updated)
	r.workflows[idx] = updated

	return updated.Clone(), nil
}

func (r *WorkflowRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return false, nil
	}

	r.workflows = slices.Delete(r.workflows, idx, idx+1)

	if r.onDelete != nil {
		r.onDelete(id)
	}

	return true, nil
}

// existsLocked must be called with mu held for reading.
func (r *WorkflowRepository) existsLocked(id int64) bool {
	return r.indexOf(id) >= 0
}

func (r *WorkflowRepository) indexOf(id int64) int {
	return slices.IndexFunc(r.workflows, func(w *models.Workflow) bool {
		return w.ID == id
	})
}
