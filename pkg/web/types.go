// Package web provides HTTP request and response types for the AI-Flow API.
package web

import "github.com/aiflow/aiflow/pkg/models"

// CreateWorkflowRequest represents the request body for creating a new workflow.
type CreateWorkflowRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"       validate:"omitempty,dive,required"`
}

// UpdateWorkflowRequest represents the request body for updating an existing workflow.
// All fields are optional to support partial updates.
type UpdateWorkflowRequest struct {
	Name        *string  `json:"name,omitempty"        validate:"omitempty,min=1"`
	Description *string  `json:"description,omitempty"`
	Steps       []string `json:"steps,omitempty"       validate:"omitempty,dive,required"`
}

func (r UpdateWorkflowRequest) toModel() models.WorkflowUpdate {
	return models.WorkflowUpdate{
		Name:        r.Name,
		Description: r.Description,
		Steps:       r.Steps,
	}
}

// CanvasItemRequest is one node of a saved canvas.
type CanvasItemRequest struct {
	ID           string         `json:"id"                     validate:"required"`
	Type         string         `json:"type"                   validate:"required"`
	Name         string         `json:"name"`
	Top          float64        `json:"top"`
	Left         float64        `json:"left"`
	Width        float64        `json:"width"                  validate:"gte=0"`
	Height       float64        `json:"height"                 validate:"gte=0"`
	Config       map[string]any `json:"config,omitempty"`
	ConfigSchema map[string]any `json:"configSchema,omitempty"`
}

// ConnectionRequest is one edge of a saved canvas.
type ConnectionRequest struct {
	Source string `json:"source" validate:"required"`
	Target string `json:"target" validate:"required"`
}

// SaveCanvasRequest replaces the whole canvas of a workflow.
type SaveCanvasRequest struct {
	CanvasItems []CanvasItemRequest `json:"canvasItems" validate:"dive"`
	Connections []ConnectionRequest `json:"connections" validate:"dive"`
}

func (r SaveCanvasRequest) toModel(workflowID int64) *models.WorkflowCanvas {
	canvas := &models.WorkflowCanvas{
		WorkflowID:  workflowID,
		CanvasItems: make([]*models.CanvasItem, 0, len(r.CanvasItems)),
		Connections: make([]*models.Connection, 0, len(r.Connections)),
	}

	for _, item := range r.CanvasItems {
		canvas.CanvasItems = append(canvas.CanvasItems, &models.CanvasItem{
			ID:           item.ID,
			Type:         item.Type,
			Name:         item.Name,
			Top:          item.Top,
			Left:         item.Left,
			Width:        item.Width,
			Height:       item.Height,
			Config:       item.Config,
			ConfigSchema: item.ConfigSchema,
		})
	}

	for _, conn := range r.Connections {
		canvas.Connections = append(canvas.Connections, &models.Connection{
			Source: conn.Source,
			Target: conn.Target,
		})
	}

	return canvas
}

// CreateAIModuleRequest represents the request body for registering an AI module.
type CreateAIModuleRequest struct {
	Name        string         `json:"name"        validate:"required"`
	Type        string         `json:"type"        validate:"required"`
	Description string         `json:"description"`
	Config      map[string]any `json:"config"`
}

// RunResponse wraps the output of an AI module run.
type RunResponse struct {
	Result string `json:"result"`
}
