package web

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// validateCanvasConfigs checks every item carrying both a config and a
// configSchema against that schema.
func validateCanvasConfigs(items []CanvasItemRequest) error {
	for _, item := range items {
		if item.Config == nil || len(item.ConfigSchema) == 0 {
			continue
		}

		if err := validateJSONSchema(item.Config, item.ConfigSchema); err != nil {
			return fmt.Errorf("canvas item %q: %w", item.ID, err)
		}
	}

	return nil
}

func validateJSONSchema(data map[string]any, schema map[string]any) error {
	schemaLoader := gojsonschema.NewGoLoader(schema)
	dataLoader := gojsonschema.NewGoLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, dataLoader)
	if err != nil {
		return fmt.Errorf("invalid config schema: %w", err)
	}

	if !result.Valid() {
		var errors []string
		for _, desc := range result.Errors() {
			errors = append(errors, desc.String())
		}

		return fmt.Errorf("config validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}
