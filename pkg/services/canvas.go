package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aiflow/aiflow/pkg/eventbus"
	"github.com/aiflow/aiflow/pkg/events"
	"github.com/aiflow/aiflow/pkg/log"
	"github.com/aiflow/aiflow/pkg/models"
	"github.com/aiflow/aiflow/pkg/persistence"
)

// Canvas reads and replaces the visual graph attached to a workflow.
type Canvas struct {
	persistence persistence.Persistence
	publisher   eventbus.EventPublisher
	logger      *slog.Logger
}

// NewCanvas returns the canvas service. A nil publisher disables lifecycle events.
func NewCanvas(persistence persistence.Persistence, publisher eventbus.EventPublisher) *Canvas {
	return &Canvas{
		persistence: persistence,
		publisher:   publisher,
		logger:      log.WithModule("canvas_service"),
	}
}

// FetchByWorkflowID returns the stored canvas, or ErrCanvasNotFound when none was saved.
func (c *Canvas) FetchByWorkflowID(ctx context.Context, workflowID int64) (*models.WorkflowCanvas, error) {
	canvas, err := c.persistence.CanvasRepository().GetByWorkflowID(ctx, workflowID)
	if err != nil {
		return nil, err
	}

	if canvas == nil {
		return nil, persistence.NewWorkflowError("FetchCanvas", workflowID, ErrCanvasNotFound)
	}

	return canvas, nil
}

// Save replaces the canvas of an existing workflow.
func (c *Canvas) Save(ctx context.Context, workflowID int64, canvas *models.WorkflowCanvas) (*models.WorkflowCanvas, error) {
	if canvas == nil {
		return nil, NewValidationError("SaveCanvas", "CANVAS_REQUIRED", "canvas cannot be nil", ErrCanvasNil)
	}

	saved, err := c.persistence.CanvasRepository().Save(ctx, workflowID, canvas)
	if err != nil {
		if persistence.IsWorkflowNotFound(err) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to save canvas: %w", err)
	}

	event := events.CanvasSaved{
		BaseEvent:       events.NewBaseEvent(events.CanvasSavedEvent),
		WorkflowID:      workflowID,
		ItemCount:       len(saved.CanvasItems),
		ConnectionCount: len(saved.Connections),
	}
	publish(ctx, c.publisher, c.logger, workflowKey(workflowID), event)

	c.logger.DebugContext(ctx, "canvas saved",
		"workflow_id", workflowID,
		"items", len(saved.CanvasItems),
		"connections", len(saved.Connections),
	)

	return saved, nil
}
