package models

import "maps"

// WorkflowCanvas is the visual graph attached one-to-one to a workflow.
type WorkflowCanvas struct {
	WorkflowID  int64         `json:"workflow_id"`
	CanvasItems []*CanvasItem `json:"canvasItems"`
	Connections []*Connection `json:"connections"`
}

// CanvasItem is a node placed on the canvas.
type CanvasItem struct {
	ID           string         `json:"id"                     validate:"required"`
	Type         string         `json:"type"                   validate:"required"`
	Name         string         `json:"name"`
	Top          float64        `json:"top"`
	Left         float64        `json:"left"`
	Width        float64        `json:"width"`
	Height       float64        `json:"height"`
	Config       map[string]any `json:"config,omitempty"`
	ConfigSchema map[string]any `json:"configSchema,omitempty"`
}

// Connection links two canvas items by id. Referential integrity is left to the caller.
type Connection struct {
	Source string `json:"source" validate:"required"`
	Target string `json:"target" validate:"required"`
}

// Clone returns a deep copy of the canvas. Nested config values are copied one level deep.
func (c *WorkflowCanvas) Clone() *WorkflowCanvas {
	if c == nil {
		return nil
	}

	clone := &WorkflowCanvas{
		WorkflowID:  c.WorkflowID,
		CanvasItems: make([]*CanvasItem, 0, len(c.CanvasItems)),
		Connections: make([]*Connection, 0, len(c.Connections)),
	}

	for _, item := range c.CanvasItems {
		if item == nil {
			continue
		}

		copied := *item
		copied.Config = maps.Clone(item.Config)
		copied.ConfigSchema = maps.Clone(item.ConfigSchema)
		clone.CanvasItems = append(clone.CanvasItems, &copied)
	}

	for _, conn := range c.Connections {
		if conn == nil {
			continue
		}

		copied := *conn
		clone.Connections = append(clone.Connections, &copied)
	}

	return clone
}
