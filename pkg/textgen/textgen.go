// Package textgen provides the text generation capability used by text generation modules.
package textgen

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrGenerationFailed is wrapped by every error a Generator returns.
var ErrGenerationFailed = errors.New("generation failed")

// Generator produces text for a prompt with the named model.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, model, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, model, prompt string) (string, error) {
	return f(ctx, model, prompt)
}

// Error describes a failed generation call.
type Error struct {
	Provider string
	Model    string
	Message  string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s generation with model %q failed: %s: %v", e.Provider, e.Model, e.Message, e.Err)
	}

	return fmt.Sprintf("%s generation with model %q failed: %s", e.Provider, e.Model, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrGenerationFailed || errors.Is(e.Err, target)
}

// IsGenerationFailed checks if an error came from a failed generation call.
func IsGenerationFailed(err error) bool {
	return errors.Is(err, ErrGenerationFailed)
}

type timeoutGenerator struct {
	next    Generator
	timeout time.Duration
}

// WithTimeout bounds every call to g. A non-positive timeout returns g unchanged.
//
//nolint:ireturn
func WithTimeout(g Generator, timeout time.Duration) Generator {
	if timeout <= 0 {
		return g
	}

	return &timeoutGenerator{next: g, timeout: timeout}
}

func (t *timeoutGenerator) Generate(ctx context.Context, model, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	type result struct {
		text string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		text, err := safeGenerate(ctx, t.next, model, prompt)
		done <- result{text: text, err: err}
	}()

	select {
	case r := <-done:
		return r.text, r.err
	case <-ctx.Done():
		return "", &Error{Provider: "timeout", Model: model, Message: "deadline exceeded", Err: ctx.Err()}
	}
}

// safeGenerate converts a panicking provider into an error.
func safeGenerate(ctx context.Context, g Generator, model, prompt string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &Error{Provider: "unknown", Model: model, Message: fmt.Sprintf("provider panicked: %v", r)}
		}
	}()

	text, err = g.Generate(ctx, model, prompt)
	if err != nil && !IsGenerationFailed(err) {
		err = &Error{Provider: "unknown", Model: model, Message: "provider error", Err: err}
	}

	return text, err
}
