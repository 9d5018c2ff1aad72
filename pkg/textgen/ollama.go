package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	ProviderOllama        = "ollama"
	DefaultOllamaEndpoint = "http://localhost:11434/api/generate"
)

// Ollama generates text through a local Ollama server.
type Ollama struct {
	Endpoint string
	Client   *http.Client
}

func NewOllama(endpoint string, client *http.Client) *Ollama {
	if endpoint == "" {
		endpoint = DefaultOllamaEndpoint
	}

	if client == nil {
		client = http.DefaultClient
	}

	return &Ollama{Endpoint: endpoint, Client: client}
}

func (o *Ollama) Generate(ctx context.Context, model, prompt string) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"model":  model,
		"prompt": prompt,
		"stream": false,
	})
	if err != nil {
		return "", o.fail(model, "failed to encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", o.fail(model, "failed to create request", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := o.Client.Do(req)
	if err != nil {
		return "", o.fail(model, "request failed", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return "", o.fail(model, fmt.Sprintf("status %s: %s", resp.Status, bytes.TrimSpace(body)), nil)
	}

	var parsed struct {
		Response string `json:"response"`
		Error    string `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", o.fail(model, "failed to decode response", err)
	}

	if parsed.Error != "" {
		return "", o.fail(model, parsed.Error, nil)
	}

	return parsed.Response, nil
}

func (o *Ollama) fail(model, message string, err error) error {
	return &Error{Provider: ProviderOllama, Model: model, Message: message, Err: err}
}
