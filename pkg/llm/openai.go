package llm

import (
	"chatbot-ai/internal/constants"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

type OpenAIClient struct {
	client              *openai.Client
	model               string
	maxCompletionTokens int
	temperature         float64
	logger              *zap.Logger
}

func NewOpenAIClient(config Config, logger *zap.Logger) (*OpenAIClient, error) {
	return NewOpenAIClientWithHTTP(config, nil, logger)
}

// NewOpenAIClientWithHTTP is NewOpenAIClient with a caller supplied transport.
// A nil httpClient keeps the library default.
func NewOpenAIClientWithHTTP(config Config, httpClient *http.Client, logger *zap.Logger) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	clientConfig.HTTPClient = strictStatusClient(httpClient)

	model := config.Model
	if model == "" {
		model = constants.OpenAIModel
	}

	return &OpenAIClient{
		client:              openai.NewClientWithConfig(clientConfig),
		model:               model,
		maxCompletionTokens: config.MaxCompletionTokens,
		temperature:         config.Temperature,
		logger:              logger.With(zap.String("module", "openai")),
	}, nil
}

// GenerateResponse sends a single-turn prompt and returns the first choice.
func (c *OpenAIClient) GenerateResponse(ctx context.Context, message, role string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: role, Content: message},
		},
		MaxCompletionTokens: c.maxCompletionTokens,
		Temperature:         float32(c.temperature),
	}

	c.logger.Debug("requesting completion", zap.String("model", c.model), zap.String("role", role))

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", c.wrapError(err)
	}

	if len(resp.Choices) == 0 {
		return "", &CompletionError{Provider: constants.OpenAI, Body: "no choices in response"}
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) wrapError(err error) error {
	var compErr *CompletionError
	if errors.As(err, &compErr) {
		return compErr
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &CompletionError{Provider: constants.OpenAI, StatusCode: apiErr.HTTPStatusCode, Body: apiErr.Message, Err: err}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &CompletionError{Provider: constants.OpenAI, StatusCode: reqErr.HTTPStatusCode, Body: string(reqErr.Body), Err: err}
	}

	return &CompletionError{Provider: constants.OpenAI, Err: err}
}

func (c *OpenAIClient) GetModelInfo() ModelInfo {
	return ModelInfo{
		Name:                c.model,
		Provider:            constants.OpenAI,
		MaxCompletionTokens: c.maxCompletionTokens,
	}
}

// strictStatusClient copies httpClient and makes its transport reject any
// status other than 200 that the SDK would otherwise accept as success.
// Error statuses (4xx, 5xx) are left to the SDK, which parses their bodies.
func strictStatusClient(httpClient *http.Client) *http.Client {
	client := &http.Client{}
	if httpClient != nil {
		copied := *httpClient
		client = &copied
	}
	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	client.Transport = &statusCheckTransport{base: base}
	return client
}

type statusCheckTransport struct {
	base http.RoundTripper
}

func (t *statusCheckTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusOK || resp.StatusCode >= http.StatusBadRequest {
		return resp, nil
	}

	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return nil, &CompletionError{Provider: constants.OpenAI, StatusCode: resp.StatusCode, Body: string(body)}
}
