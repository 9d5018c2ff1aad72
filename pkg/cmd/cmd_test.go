package cmd

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/aiflow/aiflow/pkg/config"
	"github.com/aiflow/aiflow/pkg/persistence/memory"
	"github.com/aiflow/aiflow/pkg/textgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSequenceProvider(t *testing.T) {
	assert.Equal(t, "memory", parseSequenceProvider(""))
	assert.Equal(t, "memory", parseSequenceProvider("memory://"))
	assert.Equal(t, "redis", parseSequenceProvider("redis://localhost:6379/0"))
	assert.Equal(t, "rediss", parseSequenceProvider("rediss://cache:6380"))
	assert.Empty(t, parseSequenceProvider("postgres://db"))
}

func TestNewPersistence(t *testing.T) {
	p, err := NewPersistence(t.Context(), "")
	require.NoError(t, err)
	assert.IsType(t, &memory.Persistence{}, p)
	require.NoError(t, p.Close(t.Context()))

	_, err = NewPersistence(t.Context(), "postgres://db")
	require.ErrorIs(t, err, ErrUnsupportedSequence)
}

func TestNewEventBus(t *testing.T) {
	bus, err := NewEventBus("", "", slog.Default())
	require.NoError(t, err)
	require.NoError(t, bus.Close())

	_, err = NewEventBus("kafka", "", slog.Default())
	require.Error(t, err)

	_, err = NewEventBus("rabbitmq", "", slog.Default())
	require.ErrorIs(t, err, ErrUnsupportedEventBus)
}

func TestNewGenerators(t *testing.T) {
	settings, err := config.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	registry := NewGenerators(settings, GeneratorOptions{}, slog.Default())
	assert.Equal(t, []string{textgen.ProviderOllama}, registry.Providers())

	registry = NewGenerators(settings, GeneratorOptions{OpenAIAPIKey: "sk-test"}, slog.Default())
	assert.Equal(t, []string{textgen.ProviderOllama, textgen.ProviderOpenAI}, registry.Providers())
}
