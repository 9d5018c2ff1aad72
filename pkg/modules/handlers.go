package modules

import (
	"context"

	"github.com/aiflow/aiflow/pkg/models"
	"github.com/aiflow/aiflow/pkg/template"
)

const (
	// DefaultModel is used when a text generation module has no "model" in its config.
	DefaultModel = "default-model"
	// GPT2Model selects the GPT-2 acknowledgment.
	GPT2Model = "gpt-2"

	InputTextKey = "input_text"
	ImagePathKey = "image_path"
	ModelKey     = "model"
	ProviderKey  = "provider"
	PromptKey    = "prompt"
)

var (
	gpt2Template         = template.MustParse("gpt2", "Generated text with GPT-2 model: {{ .input }} ... (generated)")
	defaultModelTemplate = template.MustParse("default_model", "Generated text with default model: {{ .input }} ... (default generated)")
	classifiedTemplate   = template.MustParse("classified", "Classifying image '{{ .path }}' ... (classified as 'cat')")
	noImageTemplate      = template.MustParse("no_image", "No image path provided, cannot classify")
	notImplemented       = template.MustParse("not_implemented", "Execution logic for AI module type '{{ .type }}' is not implemented yet")
)

// Handler executes a module of one kind against an input payload.
type Handler func(ctx context.Context, module *models.AIModule, input map[string]any) (string, error)

// Handlers is the kind -> handler table. Unknown kinds fall through to NotImplemented.
type Handlers map[Kind]Handler

// DefaultHandlers returns the placeholder handlers for the built-in kinds.
func DefaultHandlers() Handlers {
	return Handlers{
		KindTextGeneration:      TextGeneration,
		KindImageClassification: ImageClassification,
	}
}

// Lookup returns the handler for kind, or NotImplemented when none is registered.
func (h Handlers) Lookup(kind Kind) Handler {
	if handler, ok := h[kind]; ok {
		return handler
	}

	return NotImplemented
}

// TextGeneration produces a templated acknowledgment naming the configured model.
func TextGeneration(_ context.Context, module *models.AIModule, input map[string]any) (string, error) {
	model := module.ConfigString(ModelKey, DefaultModel)
	data := map[string]any{"input": InputText(input), "model": model}

	if model == GPT2Model {
		return gpt2Template.Execute(data)
	}

	return defaultModelTemplate.Execute(data)
}

// ImageClassification pretends to classify the image at input["image_path"].
func ImageClassification(_ context.Context, _ *models.AIModule, input map[string]any) (string, error) {
	path, ok := input[ImagePathKey]
	if !ok || path == nil || path == "" {
		return noImageTemplate.Execute(nil)
	}

	return classifiedTemplate.Execute(map[string]any{"path": path})
}

// NotImplemented answers successfully with a notice naming the module type.
func NotImplemented(_ context.Context, module *models.AIModule, _ map[string]any) (string, error) {
	return notImplemented.Execute(map[string]any{"type": module.Type})
}

// InputText returns input["input_text"], or "" when absent.
func InputText(input map[string]any) any {
	text, ok := input[InputTextKey]
	if !ok || text == nil {
		return ""
	}

	return text
}
