// Package persistence provides standardized error types for persistence operations.
package persistence

import (
	"errors"
	"fmt"
)

// Standard persistence error types that all implementations should use.
var (
	// ErrWorkflowNotFound indicates a workflow was not found by the given identifier.
	ErrWorkflowNotFound = errors.New("workflow not found")

	// ErrCanvasNotFound indicates no canvas has been saved for the given workflow.
	ErrCanvasNotFound = errors.New("canvas not found")

	// ErrAIModuleNotFound indicates an AI module was not found by the given identifier.
	ErrAIModuleNotFound = errors.New("ai module not found")
)

// WorkflowError wraps workflow-related errors with additional context.
type WorkflowError struct {
	Op         string // Operation being performed (e.g., "GetByID", "SaveCanvas")
	WorkflowID int64
	Err        error
}

func (e *WorkflowError) Error() string {
	return fmt.Sprintf("%s operation failed for workflow %d: %v", e.Op, e.WorkflowID, e.Err)
}

func (e *WorkflowError) Unwrap() error {
	return e.Err
}

// Is implements error comparison for workflow errors.
func (e *WorkflowError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewWorkflowError creates a new workflow error with context.
func NewWorkflowError(op string, workflowID int64, err error) *WorkflowError {
	return &WorkflowError{
		Op:         op,
		WorkflowID: workflowID,
		Err:        err,
	}
}

// AIModuleError wraps AI module errors with additional context.
type AIModuleError struct {
	Op       string
	ModuleID int64
	Err      error
}

func (e *AIModuleError) Error() string {
	return fmt.Sprintf("%s operation failed for ai module %d: %v", e.Op, e.ModuleID, e.Err)
}

func (e *AIModuleError) Unwrap() error {
	return e.Err
}

func (e *AIModuleError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewAIModuleError creates a new AI module error with context.
func NewAIModuleError(op string, moduleID int64, err error) *AIModuleError {
	return &AIModuleError{
		Op:       op,
		ModuleID: moduleID,
		Err:      err,
	}
}

// IsWorkflowNotFound checks if an error indicates a workflow was not found.
func IsWorkflowNotFound(err error) bool {
	return errors.Is(err, ErrWorkflowNotFound)
}

// IsCanvasNotFound checks if an error indicates a canvas was not found.
func IsCanvasNotFound(err error) bool {
	return errors.Is(err, ErrCanvasNotFound)
}

// IsAIModuleNotFound checks if an error indicates an AI module was not found.
func IsAIModuleNotFound(err error) bool {
	return errors.Is(err, ErrAIModuleNotFound)
}
