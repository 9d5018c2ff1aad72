// Package modules maps AI module types to their execution handlers.
package modules

import "github.com/aiflow/aiflow/pkg/models"

// Kind is the closed set of module types with a registered handler.
type Kind int

const (
	// KindUnknown covers every type string without a handler.
	KindUnknown Kind = iota
	KindTextGeneration
	KindImageClassification
)

var kindNames = map[Kind]string{
	KindTextGeneration:      models.AIModuleTypeTextGeneration,
	KindImageClassification: models.AIModuleTypeImageClassification,
}

// ParseKind maps a module type string to its Kind. Matching is exact and case-sensitive.
func ParseKind(moduleType string) Kind {
	for kind, name := range kindNames {
		if name == moduleType {
			return kind
		}
	}

	return KindUnknown
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}
