package services

import (
	"chatbot-ai/internal/apis/dtos"
	"chatbot-ai/internal/constants"
	"chatbot-ai/internal/models"
	"chatbot-ai/internal/repositories"
	"chatbot-ai/internal/utils"
	"chatbot-ai/pkg/llm"
	"context"
	"net/http"

	"go.uber.org/zap"
)

type ChatService interface {
	// Submit asks the completion provider for a reply to the message and
	// stores the exchange. Provider failures never surface as errors.
	Submit(ctx context.Context, req *dtos.SubmitChatRequest, username string) (*dtos.ChatMessageResponse, uint32, error)
	ListByUsername(ctx context.Context, username string) ([]dtos.ChatMessageResponse, uint32, error)
}

// ValidationError reports a request that was rejected before any side effect.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// InternalError hides the cause of a failure from callers. Message is safe to
// show to clients; Err keeps the cause for logs and errors.As.
type InternalError struct {
	Message string
	Err     error
}

func (e *InternalError) Error() string {
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

type chatService struct {
	chatMessageRepo repositories.ChatMessageRepository
	llmClient       llm.Client
	logger          *zap.Logger
}

func NewChatService(chatMessageRepo repositories.ChatMessageRepository, llmClient llm.Client, logger *zap.Logger) ChatService {
	return &chatService{
		chatMessageRepo: chatMessageRepo,
		llmClient:       llmClient,
		logger:          logger.With(zap.String("module", "chat_service")),
	}
}

// completion is the outcome of the single provider call for a submission.
type completion struct {
	text string
	err  error
}

// reply turns the outcome into the text stored as the response.
func (c completion) reply(message string) string {
	if c.err != nil {
		return constants.FallbackResponse(message)
	}
	if utils.IsBlank(c.text) {
		return constants.EmptyCompletionResponse
	}
	return c.text
}

func (s *chatService) Submit(ctx context.Context, req *dtos.SubmitChatRequest, username string) (*dtos.ChatMessageResponse, uint32, error) {
	if err := validateSubmission(req); err != nil {
		return nil, http.StatusBadRequest, err
	}
	if username == "" {
		s.logger.Warn("chat submitted without username")
	}

	chatMessage := models.NewChatMessage(req.ChatRole, req.Message, username)

	result := s.complete(ctx, chatMessage)
	chatMessage.Response = result.reply(chatMessage.Message)

	if err := s.chatMessageRepo.Save(ctx, chatMessage); err != nil {
		s.logger.Error("failed to save chat message", zap.String("username", username), zap.Error(err))
		return nil, http.StatusInternalServerError, &InternalError{Message: "failed to save chat message", Err: err}
	}

	s.logger.Info("chat message stored",
		zap.String("id", chatMessage.ID),
		zap.String("username", username),
		zap.Bool("fallback", result.err != nil),
	)

	response := dtos.NewChatMessageResponse(chatMessage)
	return &response, http.StatusOK, nil
}

func (s *chatService) complete(ctx context.Context, chatMessage *models.ChatMessage) completion {
	text, err := s.llmClient.GenerateResponse(ctx, chatMessage.Message, chatMessage.ChatRole)
	if err != nil {
		s.logger.Warn("completion failed, using fallback response",
			zap.String("provider", s.llmClient.GetModelInfo().Provider),
			zap.Error(err),
		)
	}
	return completion{text: text, err: err}
}

func (s *chatService) ListByUsername(ctx context.Context, username string) ([]dtos.ChatMessageResponse, uint32, error) {
	if utils.IsBlank(username) {
		return nil, http.StatusBadRequest, &ValidationError{Field: "username", Message: "Username is required"}
	}

	chatMessages, err := s.chatMessageRepo.FindByUsername(ctx, username)
	if err != nil {
		s.logger.Error("failed to list chat messages", zap.String("username", username), zap.Error(err))
		return nil, http.StatusInternalServerError, &InternalError{Message: "failed to list chat messages", Err: err}
	}

	response := make([]dtos.ChatMessageResponse, 0, len(chatMessages))
	for _, chatMessage := range chatMessages {
		response = append(response, dtos.NewChatMessageResponse(chatMessage))
	}
	return response, http.StatusOK, nil
}

func validateSubmission(req *dtos.SubmitChatRequest) error {
	if req == nil {
		return &ValidationError{Field: "body", Message: "Request body is required"}
	}
	if utils.IsBlank(req.ChatRole) {
		return &ValidationError{Field: "chatRole", Message: "Chat role is required"}
	}
	if utils.IsBlank(req.Message) {
		return &ValidationError{Field: "message", Message: "Message is required"}
	}
	return nil
}
