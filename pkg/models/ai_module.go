package models

import "maps"

// Built-in AI module types.
const (
	AIModuleTypeTextGeneration      = "text_generation"
	AIModuleTypeImageClassification = "image_classification"
)

// AIModule is a configured reference to an AI capability.
type AIModule struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"                  validate:"required"`
	Type        string         `json:"type"                  validate:"required"`
	Description string         `json:"description,omitempty"`
	Config      map[string]any `json:"config"`
}

// ConfigString reads a string value from the module config, falling back to def.
func (m *AIModule) ConfigString(key, def string) string {
	if m.Config == nil {
		return def
	}

	if value, ok := m.Config[key].(string); ok {
		return value
	}

	return def
}

// Clone returns a copy of the module with its own config map.
func (m *AIModule) Clone() *AIModule {
	if m == nil {
		return nil
	}

	clone := *m
	clone.Config = maps.Clone(m.Config)

	if clone.Config == nil {
		clone.Config = map[string]any{}
	}

	return &clone
}
