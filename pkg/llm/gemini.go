package llm

import (
	"chatbot-ai/internal/constants"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client              *genai.Client
	model               string
	maxCompletionTokens int
	temperature         float64
	logger              *zap.Logger
}

func NewGeminiClient(config Config, logger *zap.Logger) (*GeminiClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	// Create the Gemini SDK client using the provided API key.
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(config.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}

	model := config.Model
	if model == "" {
		model = constants.GeminiModel
	}

	return &GeminiClient{
		client:              client,
		model:               model,
		maxCompletionTokens: config.MaxCompletionTokens,
		temperature:         config.Temperature,
		logger:              logger.With(zap.String("module", "gemini")),
	}, nil
}

// GenerateResponse sends a single-turn prompt. Gemini only knows the user and
// model roles, so any other role is stated in the prompt text.
func (c *GeminiClient) GenerateResponse(ctx context.Context, message, role string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	if c.maxCompletionTokens > 0 {
		model.SetMaxOutputTokens(int32(c.maxCompletionTokens))
	}
	if c.temperature > 0 {
		model.SetTemperature(float32(c.temperature))
	}

	c.logger.Debug("requesting completion", zap.String("model", c.model), zap.String("role", role))

	result, err := model.GenerateContent(ctx, genai.Text(geminiPrompt(message, role)))
	if err != nil {
		return "", c.wrapError(err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", &CompletionError{Provider: constants.Gemini, Body: "no candidates in response"}
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	return text.String(), nil
}

func geminiPrompt(message, role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "", "user":
		return message
	default:
		return fmt.Sprintf("Role: %s\n\n%s", role, message)
	}
}

func (c *GeminiClient) wrapError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return &CompletionError{Provider: constants.Gemini, StatusCode: apiErr.Code, Body: apiErr.Message, Err: err}
	}
	return &CompletionError{Provider: constants.Gemini, Err: err}
}

// GetModelInfo returns information about the Gemini model.
func (c *GeminiClient) GetModelInfo() ModelInfo {
	return ModelInfo{
		Name:                c.model,
		Provider:            constants.Gemini,
		MaxCompletionTokens: c.maxCompletionTokens,
	}
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}
