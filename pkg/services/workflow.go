package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aiflow/aiflow/pkg/eventbus"
	"github.com/aiflow/aiflow/pkg/events"
	"github.com/aiflow/aiflow/pkg/log"
	"github.com/aiflow/aiflow/pkg/models"
	"github.com/aiflow/aiflow/pkg/persistence"
)

type Workflow struct {
	persistence persistence.Persistence
	publisher   eventbus.EventPublisher
	logger      *slog.Logger
}

// NewWorkflow creates a new workflow service. publisher may be nil.
func NewWorkflow(persistence persistence.Persistence, publisher eventbus.EventPublisher) *Workflow {
	return &Workflow{
		persistence: persistence,
		publisher:   publisher,
		logger:      log.WithModule("workflow_service"),
	}
}

// HealthCheck checks the health of the persistence layer.
func (w *Workflow) HealthCheck(ctx context.Context) (string, bool) {
	if w.persistence == nil {
		return "Persistence layer not initialized", false
	}

	err := w.persistence.HealthCheck(ctx)
	if err != nil {
		return "Persistence layer is unhealthy: " + err.Error(), false
	}

	return "Persistence layer is healthy", true
}

// List returns every workflow in creation order.
func (w *Workflow) List(ctx context.Context) ([]*models.Workflow, error) {
	workflows, err := w.persistence.WorkflowRepository().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}

	return workflows, nil
}

// Create registers a new workflow under the next workflow identifier.
func (w *Workflow) Create(ctx context.Context, name, description string, steps []string) (*models.Workflow, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewValidationError("Create", "WORKFLOW_NAME_REQUIRED", "workflow name is required", ErrWorkflowNameRequired)
	}

	if steps == nil {
		steps = []string{}
	}

	workflow, err := w.persistence.WorkflowRepository().Create(ctx, name, description, steps)
	if err != nil {
		return nil, fmt.Errorf("failed to create workflow: %w", err)
	}

	event := events.WorkflowCreated{BaseEvent: events.NewBaseEvent(events.WorkflowCreatedEvent), Workflow: workflow}
	publish(ctx, w.publisher, w.logger, workflowKey(workflow.ID), event)

	w.logger.InfoContext(ctx, "workflow created", "workflow_id", workflow.ID, "name", workflow.Name)

	return workflow, nil
}

// FetchByID retrieves a workflow by its ID.
func (w *Workflow) FetchByID(ctx context.Context, id int64) (*models.Workflow, error) {
	workflow, err := w.persistence.WorkflowRepository().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if workflow == nil {
		return nil, persistence.NewWorkflowError("FetchByID", id, ErrWorkflowNotFound)
	}

	return workflow, nil
}

// Update applies the non-nil fields of update to the workflow.
func (w *Workflow) Update(ctx context.Context, id int64, update models.WorkflowUpdate) (*models.Workflow, error) {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, NewValidationError("Update", "WORKFLOW_NAME_REQUIRED", "workflow name cannot be empty", ErrWorkflowNameRequired)
	}

	workflow, err := w.persistence.WorkflowRepository().Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update workflow: %w", err)
	}

	if workflow == nil {
		return nil, persistence.NewWorkflowError("Update", id, ErrWorkflowNotFound)
	}

	event := events.WorkflowUpdated{BaseEvent: events.NewBaseEvent(events.WorkflowUpdatedEvent), Workflow: workflow}
	publish(ctx, w.publisher, w.logger, workflowKey(id), event)

	return workflow, nil
}

// Delete removes the workflow and its canvas.
func (w *Workflow) Delete(ctx context.Context, id int64) error {
	removed, err := w.persistence.WorkflowRepository().Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete workflow: %w", err)
	}

	if !removed {
		return persistence.NewWorkflowError("Delete", id, ErrWorkflowNotFound)
	}

	event := events.WorkflowDeleted{BaseEvent: events.NewBaseEvent(events.WorkflowDeletedEvent), WorkflowID: id}
	publish(ctx, w.publisher, w.logger, workflowKey(id), event)

	w.logger.InfoContext(ctx, "workflow deleted", "workflow_id", id)

	return nil
}

func workflowKey(id int64) string {
	return "workflow-" + strconv.FormatInt(id, 10)
}
