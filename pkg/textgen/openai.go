package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	ProviderOpenAI        = "openai"
	DefaultOpenAIEndpoint = "https://api.openai.com/v1/chat/completions"
	DefaultOpenAIModel    = "gpt-3.5-turbo"
)

// ErrMissingAPIKey is returned by NewOpenAI without an API key.
var ErrMissingAPIKey = errors.New("openai api key is not set")

// OpenAI generates text through the chat completions API.
type OpenAI struct {
	Endpoint    string
	APIKey      string
	Temperature float64
	Client      *http.Client
}

func NewOpenAI(apiKey, endpoint string, client *http.Client) (*OpenAI, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	if endpoint == "" {
		endpoint = DefaultOpenAIEndpoint
	}

	if client == nil {
		client = http.DefaultClient
	}

	return &OpenAI{
		Endpoint:    endpoint,
		APIKey:      apiKey,
		Temperature: 0.7,
		Client:      client,
	}, nil
}

func (o *OpenAI) Generate(ctx context.Context, model, prompt string) (string, error) {
	if model == "" {
		model = DefaultOpenAIModel
	}

	payload, err := json.Marshal(map[string]any{
		"model":       model,
		"messages":    []map[string]string{{"role": "user", "content": prompt}},
		"temperature": o.Temperature,
	})
	if err != nil {
		return "", o.fail(model, "failed to encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", o.fail(model, "failed to create request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.APIKey)

	resp, err := o.Client.Do(req)
	if err != nil {
		return "", o.fail(model, "request failed", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	decodeErr := json.NewDecoder(resp.Body).Decode(&parsed)

	if resp.StatusCode != http.StatusOK {
		message := "status " + resp.Status
		if decodeErr == nil && parsed.Error != nil && parsed.Error.Message != "" {
			message = fmt.Sprintf("%s: %s", message, parsed.Error.Message)
		}

		return "", o.fail(model, message, nil)
	}

	if decodeErr != nil {
		return "", o.fail(model, "failed to decode response", decodeErr)
	}

	if len(parsed.Choices) == 0 {
		return "", o.fail(model, "response contained no choices", nil)
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

func (o *OpenAI) fail(model, message string, err error) error {
	return &Error{Provider: ProviderOpenAI, Model: model, Message: message, Err: err}
}
