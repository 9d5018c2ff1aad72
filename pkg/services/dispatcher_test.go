package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aiflow/aiflow/pkg/events"
	"github.com/aiflow/aiflow/pkg/models"
	"github.com/aiflow/aiflow/pkg/modules"
	"github.com/aiflow/aiflow/pkg/persistence/memory"
	"github.com/aiflow/aiflow/pkg/textgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_TextGenerationGPT2(t *testing.T) {
	p := memory.NewPersistence()
	publisher := &recordingPublisher{}
	dispatcher := NewDispatcher(p, WithPublisher(publisher))

	module, err := NewAIModule(p, nil).Create(t.Context(), "M1", models.AIModuleTypeTextGeneration, "", map[string]any{"model": "gpt-2"})
	require.NoError(t, err)
	require.Equal(t, int64(1), module.ID)

	result, err := dispatcher.Run(t.Context(), module.ID, map[string]any{"input_text": "hello"})
	require.NoError(t, err)
	assert.Contains(t, result, "GPT-2")
	assert.Contains(t, result, "hello")

	require.Len(t, publisher.events, 1)
	completed, ok := publisher.events[0].(events.AIModuleRunCompleted)
	require.True(t, ok)
	assert.Equal(t, module.ID, completed.ModuleID)
	assert.False(t, completed.Generated)
}

func TestDispatcher_TextGenerationDefaultModel(t *testing.T) {
	p := memory.NewPersistence()
	dispatcher := NewDispatcher(p)

	module, err := NewAIModule(p, nil).Create(t.Context(), "M", models.AIModuleTypeTextGeneration, "", nil)
	require.NoError(t, err)

	result, err := dispatcher.Run(t.Context(), module.ID, nil)
	require.NoError(t, err)
	assert.Contains(t, result, "default model")
	assert.NotContains(t, result, "GPT-2")
}

func TestDispatcher_ImageClassification(t *testing.T) {
	p := memory.NewPersistence()
	dispatcher := NewDispatcher(p)

	module, err := NewAIModule(p, nil).Create(t.Context(), "Vision", models.AIModuleTypeImageClassification, "", nil)
	require.NoError(t, err)

	result, err := dispatcher.Run(t.Context(), module.ID, map[string]any{"image_path": "/tmp/cat.png"})
	require.NoError(t, err)
	assert.Contains(t, result, "/tmp/cat.png")
	assert.Contains(t, result, "cat")

	result, err = dispatcher.Run(t.Context(), module.ID, map[string]any{})
	require.NoError(t, err)
	assert.Contains(t, result, "No image path provided")
}

func TestDispatcher_UnknownModule(t *testing.T) {
	publisher := &recordingPublisher{}
	dispatcher := NewDispatcher(memory.NewPersistence(), WithPublisher(publisher))

	_, err := dispatcher.Run(t.Context(), 999, map[string]any{})
	require.ErrorIs(t, err, ErrAIModuleNotFound)
	assert.True(t, IsNotFoundError(err))
	assert.Empty(t, publisher.events)
}

func TestDispatcher_UnknownTypeIsNotAnError(t *testing.T) {
	p := memory.NewPersistence()
	dispatcher := NewDispatcher(p)
	service := NewAIModule(p, nil)

	_, err := service.Create(t.Context(), "M1", models.AIModuleTypeTextGeneration, "", map[string]any{"model": "gpt-2"})
	require.NoError(t, err)

	module, err := service.Create(t.Context(), "M2", "unknown_type", "", map[string]any{})
	require.NoError(t, err)
	require.Equal(t, int64(2), module.ID)

	result, err := dispatcher.Run(t.Context(), module.ID, map[string]any{})
	require.NoError(t, err)
	assert.Contains(t, result, "not implemented")
	assert.Contains(t, result, "unknown_type")
}

func TestDispatcher_TypeMatchIsCaseSensitive(t *testing.T) {
	p := memory.NewPersistence()
	dispatcher := NewDispatcher(p)

	module, err := NewAIModule(p, nil).Create(t.Context(), "M", "Text_Generation", "", map[string]any{"model": "gpt-2"})
	require.NoError(t, err)

	result, err := dispatcher.Run(t.Context(), module.ID, map[string]any{"input_text": "hello"})
	require.NoError(t, err)
	assert.Contains(t, result, "not implemented")
}

func TestDispatcher_ProviderGeneration(t *testing.T) {
	p := memory.NewPersistence()
	publisher := &recordingPublisher{}

	var gotModel, gotPrompt string

	registry := textgen.NewRegistry()
	registry.Register(textgen.ProviderOllama, textgen.GeneratorFunc(func(_ context.Context, model, prompt string) (string, error) {
		gotModel, gotPrompt = model, prompt

		return "a real answer", nil
	}))

	dispatcher := NewDispatcher(p,
		WithGenerators(registry, time.Second),
		WithDefaultModel("llama3"),
		WithPublisher(publisher),
	)

	module, err := NewAIModule(p, nil).Create(t.Context(), "Local", models.AIModuleTypeTextGeneration, "",
		map[string]any{modules.ProviderKey: textgen.ProviderOllama})
	require.NoError(t, err)

	result, err := dispatcher.Run(t.Context(), module.ID, map[string]any{"input_text": "hello"})
	require.NoError(t, err)
	assert.Equal(t, "a real answer", result)
	assert.Equal(t, "llama3", gotModel)
	assert.Equal(t, "hello", gotPrompt)

	_, err = dispatcher.Run(t.Context(), module.ID, map[string]any{"prompt": "explicit", "input_text": "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "explicit", gotPrompt)

	completed, ok := publisher.events[0].(events.AIModuleRunCompleted)
	require.True(t, ok)
	assert.True(t, completed.Generated)
}

func TestDispatcher_ProviderFailure(t *testing.T) {
	p := memory.NewPersistence()
	publisher := &recordingPublisher{}

	registry := textgen.NewRegistry()
	registry.Register(textgen.ProviderOpenAI, textgen.GeneratorFunc(func(context.Context, string, string) (string, error) {
		return "", errors.New("connection refused")
	}))

	dispatcher := NewDispatcher(p, WithGenerators(registry, time.Second), WithPublisher(publisher))

	module, err := NewAIModule(p, nil).Create(t.Context(), "Remote", models.AIModuleTypeTextGeneration, "",
		map[string]any{modules.ProviderKey: textgen.ProviderOpenAI, modules.ModelKey: "gpt-4o"})
	require.NoError(t, err)

	_, err = dispatcher.Run(t.Context(), module.ID, map[string]any{"input_text": "hi"})
	require.Error(t, err)
	assert.True(t, IsCollaboratorError(err))
	assert.Contains(t, err.Error(), "generation failed")

	assert.Equal(t, []events.EventType{events.AIModuleRunFailedEvent}, publisher.types())
}

func TestDispatcher_ProviderTimeout(t *testing.T) {
	p := memory.NewPersistence()

	registry := textgen.NewRegistry()
	registry.Register(textgen.ProviderOllama, textgen.GeneratorFunc(func(ctx context.Context, _, _ string) (string, error) {
		<-ctx.Done()

		return "", ctx.Err()
	}))

	dispatcher := NewDispatcher(p, WithGenerators(registry, 20*time.Millisecond))

	module, err := NewAIModule(p, nil).Create(t.Context(), "Slow", models.AIModuleTypeTextGeneration, "",
		map[string]any{modules.ProviderKey: textgen.ProviderOllama})
	require.NoError(t, err)

	_, err = dispatcher.Run(t.Context(), module.ID, map[string]any{})
	require.ErrorIs(t, err, ErrGenerationFailed)
}

func TestDispatcher_UnregisteredProviderFallsBackToPlaceholder(t *testing.T) {
	p := memory.NewPersistence()
	dispatcher := NewDispatcher(p)

	module, err := NewAIModule(p, nil).Create(t.Context(), "M", models.AIModuleTypeTextGeneration, "",
		map[string]any{modules.ProviderKey: "anthropic", modules.ModelKey: "gpt-2"})
	require.NoError(t, err)

	result, err := dispatcher.Run(t.Context(), module.ID, map[string]any{"input_text": "hello"})
	require.NoError(t, err)
	assert.Contains(t, result, "GPT-2")
}

func TestDispatcher_CustomHandlers(t *testing.T) {
	p := memory.NewPersistence()
	handlers := modules.DefaultHandlers()
	handlers[modules.KindImageClassification] = func(context.Context, *models.AIModule, map[string]any) (string, error) {
		return "dog", nil
	}

	dispatcher := NewDispatcher(p, WithHandlers(handlers))

	module, err := NewAIModule(p, nil).Create(t.Context(), "Vision", models.AIModuleTypeImageClassification, "", nil)
	require.NoError(t, err)

	result, err := dispatcher.Run(t.Context(), module.ID, map[string]any{"image_path": "x.png"})
	require.NoError(t, err)
	assert.Equal(t, "dog", result)
}
