package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aiflow/aiflow/pkg/persistence"
	"github.com/aiflow/aiflow/pkg/textgen"
	"github.com/stretchr/testify/assert"
)

func TestServiceError(t *testing.T) {
	err := NewValidationError("Create", "WORKFLOW_NAME_REQUIRED", "workflow name is required", ErrWorkflowNameRequired)

	assert.Equal(t, "Create: workflow name is required", err.Error())
	assert.ErrorIs(t, err, ErrWorkflowNameRequired)
	assert.True(t, IsValidationError(err))
	assert.False(t, IsNotFoundError(err))

	bare := &ServiceError{Op: "Run", Err: errors.New("boom")}
	assert.Equal(t, "Run: boom", bare.Error())
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		validation   bool
		notFound     bool
		collaborator bool
	}{
		{"nil canvas", fmt.Errorf("wrapped: %w", ErrCanvasNil), true, false, false},
		{"workflow not found", persistence.NewWorkflowError("Get", 1, ErrWorkflowNotFound), false, true, false},
		{"canvas not found", persistence.NewWorkflowError("FetchCanvas", 1, ErrCanvasNotFound), false, true, false},
		{"module not found", persistence.NewAIModuleError("Run", 9, ErrAIModuleNotFound), false, true, false},
		{"generation failed", NewCollaboratorError("Run", &textgen.Error{Provider: "ollama", Message: "down"}), false, false, true},
		{"other", errors.New("disk on fire"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.validation, IsValidationError(tt.err))
			assert.Equal(t, tt.notFound, IsNotFoundError(tt.err))
			assert.Equal(t, tt.collaborator, IsCollaboratorError(tt.err))
		})
	}
}
