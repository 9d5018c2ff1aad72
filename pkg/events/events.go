// Package events defines lifecycle events for workflows, canvases and AI modules.
package events

import (
	"time"

	"github.com/aiflow/aiflow/pkg/models"
	"github.com/google/uuid"
)

type EventType string

// Topic all lifecycle events are published to.
const Topic = "aiflow.events"

const EventMetadataKey = "key"
const EventTypeMetadataKey = "event_type"

const (
	WorkflowCreatedEvent EventType = "workflow.created"
	WorkflowUpdatedEvent EventType = "workflow.updated"
	WorkflowDeletedEvent EventType = "workflow.deleted"
	CanvasSavedEvent     EventType = "workflow.canvas.saved"

	AIModuleCreatedEvent      EventType = "ai_module.created"
	AIModuleRunCompletedEvent EventType = "ai_module.run.completed"
	AIModuleRunFailedEvent    EventType = "ai_module.run.failed"
)

type BaseEvent struct {
	ID        string         `json:"id"`
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

func NewBaseEvent(eventType EventType) BaseEvent {
	return BaseEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Metadata:  make(map[string]any),
	}
}

type WorkflowCreated struct {
	BaseEvent

	Workflow *models.Workflow `json:"workflow"`
}

func (e WorkflowCreated) GetType() EventType {
	return WorkflowCreatedEvent
}

type WorkflowUpdated struct {
	BaseEvent

	Workflow *models.Workflow `json:"workflow"`
}

func (e WorkflowUpdated) GetType() EventType {
	return WorkflowUpdatedEvent
}

type WorkflowDeleted struct {
	BaseEvent

	WorkflowID int64 `json:"workflow_id"`
}

func (e WorkflowDeleted) GetType() EventType {
	return WorkflowDeletedEvent
}

type CanvasSaved struct {
	BaseEvent

	WorkflowID      int64 `json:"workflow_id"`
	ItemCount       int   `json:"item_count"`
	ConnectionCount int   `json:"connection_count"`
}

func (e CanvasSaved) GetType() EventType {
	return CanvasSavedEvent
}

type AIModuleCreated struct {
	BaseEvent

	Module *models.AIModule `json:"module"`
}

func (e AIModuleCreated) GetType() EventType {
	return AIModuleCreatedEvent
}

type AIModuleRunCompleted struct {
	BaseEvent

	ModuleID   int64         `json:"module_id"`
	ModuleType string        `json:"module_type"`
	Generated  bool          `json:"generated"`
	Duration   time.Duration `json:"duration"`
}

func (e AIModuleRunCompleted) GetType() EventType {
	return AIModuleRunCompletedEvent
}

type AIModuleRunFailed struct {
	BaseEvent

	ModuleID   int64  `json:"module_id"`
	ModuleType string `json:"module_type"`
	Error      string `json:"error"`
}

func (e AIModuleRunFailed) GetType() EventType {
	return AIModuleRunFailedEvent
}

// New returns an empty event value for eventType, ready to be decoded into.
func New(eventType EventType) (any, bool) {
	switch eventType {
	case WorkflowCreatedEvent:
		return &WorkflowCreated{}, true
	case WorkflowUpdatedEvent:
		return &WorkflowUpdated{}, true
	case WorkflowDeletedEvent:
		return &WorkflowDeleted{}, true
	case CanvasSavedEvent:
		return &CanvasSaved{}, true
	case AIModuleCreatedEvent:
		return &AIModuleCreated{}, true
	case AIModuleRunCompletedEvent:
		return &AIModuleRunCompleted{}, true
	case AIModuleRunFailedEvent:
		return &AIModuleRunFailed{}, true
	default:
		return nil, false
	}
}
