// Package config loads process-wide settings addressable by dotted key path.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Well-known setting keys.
const (
	KeyAppName                = "app_name"
	KeyServerHost             = "server.host"
	KeyServerPort             = "server.port"
	KeyDefaultTextModel       = "ai_models.default_text_generation_model"
	KeyGenerationTimeout      = "ai_models.generation_timeout"
	KeyOllamaEndpoint         = "ai_models.ollama.endpoint"
	KeyOpenAIEndpoint         = "ai_models.openai.endpoint"
	KeyOpenAIAPIKey           = "api_keys.openai"
	envPrefix                 = "AIFLOW"
	defaultGenerationDuration = "30s"
)

// Defaults are used for every key the settings file does not provide.
func Defaults() map[string]any {
	return map[string]any{
		KeyAppName:           "AI-Flow",
		KeyServerHost:        "0.0.0.0",
		KeyServerPort:        8000,
		KeyDefaultTextModel:  "gpt-2",
		KeyGenerationTimeout: defaultGenerationDuration,
		KeyOllamaEndpoint:    "http://localhost:11434/api/generate",
		KeyOpenAIEndpoint:    "https://api.openai.com/v1/chat/completions",
		KeyOpenAIAPIKey:      "",
	}
}

// Settings is a read-only view over the loaded configuration.
type Settings struct {
	v *viper.Viper
	// Loaded is false when no settings file was found and only defaults apply.
	Loaded bool
	Source string
}

// Load reads the settings file at path (JSON, YAML or TOML, by extension).
// A missing file is not an error: the built-in defaults apply.
// Environment variables AIFLOW_<PATH> override both, e.g. AIFLOW_SERVER_PORT.
func Load(path string) (*Settings, error) {
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	settings := &Settings{v: v}

	if path == "" {
		return settings, nil
	}

	v.SetConfigFile(path)

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}

		return nil, fmt.Errorf("failed to load settings from %s: %w", path, err)
	}

	settings.Loaded = true
	settings.Source = path

	return settings, nil
}

func (s *Settings) String(keyPath string) string {
	return s.v.GetString(keyPath)
}

func (s *Settings) Int(keyPath string) int {
	return s.v.GetInt(keyPath)
}

func (s *Settings) Duration(keyPath string) time.Duration {
	return s.v.GetDuration(keyPath)
}
