// Package services provides standardized error types for service layer operations.
package services

import (
	"errors"
	"fmt"

	"github.com/aiflow/aiflow/pkg/persistence"
	"github.com/aiflow/aiflow/pkg/textgen"
)

// Business Logic Errors - These indicate client errors (4xx responses).
var (
	// Validation Errors (400 Bad Request).
	ErrWorkflowNameRequired = errors.New("workflow name is required")
	ErrModuleNameRequired   = errors.New("ai module name is required")
	ErrModuleTypeRequired   = errors.New("ai module type is required")
	ErrCanvasNil            = errors.New("canvas cannot be nil")

	// Not Found Errors (404 Not Found).
	ErrWorkflowNotFound = persistence.ErrWorkflowNotFound
	ErrCanvasNotFound   = persistence.ErrCanvasNotFound
	ErrAIModuleNotFound = persistence.ErrAIModuleNotFound

	// Collaborator Errors (502 Bad Gateway).
	ErrGenerationFailed = textgen.ErrGenerationFailed
)

// ServiceError wraps service-level errors with additional context.
type ServiceError struct {
	Op      string // Operation name
	Code    string // Error code for API responses
	Message string // Human-readable message
	Err     error  // Underlying error
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}

	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func (e *ServiceError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// IsValidationError checks if an error is a validation error that should return HTTP 400.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrWorkflowNameRequired) ||
		errors.Is(err, ErrModuleNameRequired) ||
		errors.Is(err, ErrModuleTypeRequired) ||
		errors.Is(err, ErrCanvasNil)
}

// IsNotFoundError checks if an error should return HTTP 404.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrWorkflowNotFound) ||
		errors.Is(err, ErrCanvasNotFound) ||
		errors.Is(err, ErrAIModuleNotFound)
}

// IsCollaboratorError checks if an external capability failed (HTTP 502).
func IsCollaboratorError(err error) bool {
	return errors.Is(err, ErrGenerationFailed)
}

// NewValidationError creates a new validation error with context.
func NewValidationError(op, code, message string, err error) *ServiceError {
	return &ServiceError{
		Op:      op,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewCollaboratorError wraps a failure of an external capability, keeping its message.
func NewCollaboratorError(op string, err error) *ServiceError {
	return &ServiceError{
		Op:      op,
		Code:    "GENERATION_FAILED",
		Message: "generation failed: " + err.Error(),
		Err:     err,
	}
}
