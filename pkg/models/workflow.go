// Package models defines the core domain models for workflows, canvases and AI modules.
package models

// Workflow represents a named, ordered sequence of step identifiers.
type Workflow struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"                  validate:"required"`
	Description string   `json:"description,omitempty"`
	Steps       []string `json:"steps"`
}

// WorkflowUpdate carries a partial update. Nil fields leave the stored value untouched.
type WorkflowUpdate struct {
	Name        *string
	Description *string
	Steps       []string
}

// Apply replaces every field set on u and reports whether anything changed.
func (u WorkflowUpdate) Apply(w *Workflow) bool {
	changed := false

	if u.Name != nil {
		w.Name = *u.Name
		changed = true
	}

	if u.Description != nil {
		w.Description = *u.Description
		changed = true
	}

	if u.Steps != nil {
		w.Steps = append([]string{}, u.Steps...)
		changed = true
	}

	return changed
}

// Clone returns a deep copy of the workflow.
func (w *Workflow) Clone() *Workflow {
	if w == nil {
		return nil
	}

	clone := *w
	clone.Steps = append([]string{}, w.Steps...)

	return &clone
}
