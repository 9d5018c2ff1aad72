package cmd

import (
	"log/slog"
	"net/http"

	"github.com/aiflow/aiflow/pkg/config"
	"github.com/aiflow/aiflow/pkg/textgen"
)

// GeneratorOptions override the generator endpoints and keys found in settings.
type GeneratorOptions struct {
	OllamaURL    string
	OpenAIAPIKey string
}

// NewGenerators registers the Ollama generator and, when an API key is
// available, the OpenAI generator.
func NewGenerators(settings *config.Settings, opts GeneratorOptions, logger *slog.Logger) *textgen.Registry {
	registry := textgen.NewRegistry()
	client := &http.Client{}

	ollamaURL := opts.OllamaURL
	if ollamaURL == "" {
		ollamaURL = settings.String(config.KeyOllamaEndpoint)
	}

	registry.Register(textgen.ProviderOllama, textgen.NewOllama(ollamaURL, client))

	apiKey := opts.OpenAIAPIKey
	if apiKey == "" {
		apiKey = settings.String(config.KeyOpenAIAPIKey)
	}

	openai, err := textgen.NewOpenAI(apiKey, settings.String(config.KeyOpenAIEndpoint), client)
	if err != nil {
		logger.Info("OpenAI generator disabled", "reason", err)
	} else {
		registry.Register(textgen.ProviderOpenAI, openai)
	}

	logger.Info("Text generators registered", "providers", registry.Providers())

	return registry
}
