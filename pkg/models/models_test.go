package models

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestWorkflowUpdate_Apply(t *testing.T) {
	original := Workflow{ID: 1, Name: "old", Description: "desc", Steps: []string{"a", "b"}}

	tests := []struct {
		name     string
		update   WorkflowUpdate
		expected Workflow
		changed  bool
	}{
		{
			name:     "empty update",
			update:   WorkflowUpdate{},
			expected: original,
			changed:  false,
		},
		{
			name:     "name only",
			update:   WorkflowUpdate{Name: strPtr("new")},
			expected: Workflow{ID: 1, Name: "new", Description: "desc", Steps: []string{"a", "b"}},
			changed:  true,
		},
		{
			name:     "description cleared",
			update:   WorkflowUpdate{Description: strPtr("")},
			expected: Workflow{ID: 1, Name: "old", Description: "", Steps: []string{"a", "b"}},
			changed:  true,
		},
		{
			name:     "steps replaced with empty list",
			update:   WorkflowUpdate{Steps: []string{}},
			expected: Workflow{ID: 1, Name: "old", Description: "desc", Steps: []string{}},
			changed:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := original.Clone()

			assert.Equal(t, tt.changed, tt.update.Apply(w))
			assert.Equal(t, tt.expected, *w)
		})
	}
}

func TestWorkflow_CloneIsIndependent(t *testing.T) {
	w := &Workflow{ID: 3, Name: "wf", Steps: []string{"a"}}
	clone := w.Clone()

	clone.Steps[0] = "changed"
	clone.Name = "other"

	assert.Equal(t, "a", w.Steps[0])
	assert.Equal(t, "wf", w.Name)

	var nilWorkflow *Workflow
	assert.Nil(t, nilWorkflow.Clone())
}

func TestWorkflowCanvas_Clone(t *testing.T) {
	canvas := &WorkflowCanvas{
		WorkflowID: 1,
		CanvasItems: []*CanvasItem{
			{ID: "n1", Type: "text_generation", Config: map[string]any{"model": "gpt-2"}},
			nil,
		},
		Connections: []*Connection{{Source: "n1", Target: "n2"}},
	}

	clone := canvas.Clone()
	require.Len(t, clone.CanvasItems, 1)

	clone.CanvasItems[0].Config["model"] = "other"
	clone.Connections[0].Target = "n3"

	assert.Equal(t, "gpt-2", canvas.CanvasItems[0].Config["model"])
	assert.Equal(t, "n2", canvas.Connections[0].Target)

	empty := (&WorkflowCanvas{WorkflowID: 2}).Clone()
	assert.NotNil(t, empty.CanvasItems)
	assert.NotNil(t, empty.Connections)
}

func TestWorkflowCanvas_JSONFieldNames(t *testing.T) {
	canvas := &WorkflowCanvas{
		WorkflowID:  7,
		CanvasItems: []*CanvasItem{{ID: "n1", Type: "t", ConfigSchema: map[string]any{"type": "object"}}},
		Connections: []*Connection{{Source: "n1", Target: "n2"}},
	}

	data, err := json.Marshal(canvas)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Contains(t, raw, "workflow_id")
	assert.Contains(t, raw, "canvasItems")
	assert.Contains(t, raw, "connections")

	item := raw["canvasItems"].([]any)[0].(map[string]any)
	assert.Contains(t, item, "configSchema")
	assert.NotContains(t, item, "config")
}

func TestAIModule_ConfigString(t *testing.T) {
	module := &AIModule{Config: map[string]any{"model": "gpt-2", "temperature": 0.7}}

	assert.Equal(t, "gpt-2", module.ConfigString("model", "default-model"))
	assert.Equal(t, "fallback", module.ConfigString("temperature", "fallback"))
	assert.Equal(t, "fallback", module.ConfigString("missing", "fallback"))
	assert.Equal(t, "fallback", (&AIModule{}).ConfigString("model", "fallback"))
}

func TestAIModule_Clone(t *testing.T) {
	module := &AIModule{ID: 1, Name: "M", Type: AIModuleTypeTextGeneration}

	clone := module.Clone()
	require.NotNil(t, clone.Config)

	clone.Config["model"] = "gpt-2"
	assert.Nil(t, module.Config)
}

func TestModels_Validation(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	require.NoError(t, validate.Struct(Workflow{Name: "ok"}))
	require.Error(t, validate.Struct(Workflow{}))

	require.NoError(t, validate.Struct(AIModule{Name: "M", Type: "anything"}))
	require.Error(t, validate.Struct(AIModule{Name: "M"}))

	require.Error(t, validate.Struct(Connection{Source: "a"}))
	require.Error(t, validate.Struct(CanvasItem{ID: "n1"}))
}
