package handlers

import (
	"chatbot-ai/internal/apis/dtos"
	"chatbot-ai/internal/services"
	"chatbot-ai/internal/utils"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService services.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService services.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger.With(zap.String("module", "chat_handler")),
	}
}

// @Summary Submit a chat message
// @Description Ask the chatbot and store the exchange
// @Accept json
// @Produce json
// @Param username query string false "Username"
// @Param submitChatRequest body dtos.SubmitChatRequest true "Chat role and message"
// @Success 200 {object} dtos.ChatMessageResponse

func (h *ChatHandler) Submit(c *gin.Context) {
	var req dtos.SubmitChatRequest
	if err := c.ShouldBind(&req); err != nil {
		h.fail(c, http.StatusBadRequest, fmt.Errorf("Invalid request: %w", err))
		return
	}

	// The exchange is stored even if the caller goes away mid-request.
	ctx := context.WithoutCancel(c.Request.Context())

	response, statusCode, err := h.chatService.Submit(ctx, &req, c.Query("username"))
	if err != nil {
		h.fail(c, int(statusCode), err)
		return
	}

	c.JSON(int(statusCode), response)
}

// @Summary List chat messages of a user
// @Description List every stored exchange for the username, oldest first
// @Produce json
// @Param username query string true "Username"
// @Success 200 {array} dtos.ChatMessageResponse

func (h *ChatHandler) ListByUser(c *gin.Context) {
	ctx := context.WithoutCancel(c.Request.Context())

	response, statusCode, err := h.chatService.ListByUsername(ctx, c.Query("username"))
	if err != nil {
		h.fail(c, int(statusCode), err)
		return
	}

	c.JSON(int(statusCode), response)
}

func (h *ChatHandler) fail(c *gin.Context, statusCode int, err error) {
	if statusCode >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
			zap.NamedError("cause", errors.Unwrap(err)),
		)
	}
	c.JSON(statusCode, dtos.Response{
		Success: false,
		Error:   utils.ToStringPtr(err.Error()),
	})
}
