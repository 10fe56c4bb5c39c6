package llm

import (
	"context"
	"fmt"
)

// Client defines the interface for completion providers
type Client interface {
	GenerateResponse(ctx context.Context, message, role string) (string, error)
	GetModelInfo() ModelInfo
}

// ModelInfo contains information about the LLM model
type ModelInfo struct {
	Name                string
	Provider            string
	MaxCompletionTokens int
}

// Config holds configuration for LLM clients
type Config struct {
	Provider            string
	Model               string
	APIKey              string
	BaseURL             string // openai only; empty means the public endpoint
	MaxCompletionTokens int
	Temperature         float64
}

// CompletionError is returned when a provider could not produce a completion,
// either because the call failed in transport or because the provider
// answered with a non-success status.
type CompletionError struct {
	Provider   string
	StatusCode int    // 0 when no response was received
	Body       string // provider error body or message, if any
	Err        error
}

func (e *CompletionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s completion failed with status %d: %s", e.Provider, e.StatusCode, e.Body)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s completion failed: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s completion failed: %s", e.Provider, e.Body)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}
