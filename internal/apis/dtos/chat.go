package dtos

import (
	"chatbot-ai/internal/models"
	"time"
)

type SubmitChatRequest struct {
	ChatRole string `json:"chatRole" form:"chatRole" binding:"required"`
	Message  string `json:"message" form:"message" binding:"required"`
}

type ChatMessageResponse struct {
	ID          string    `json:"id"`
	ChatRole    string    `json:"chatRole"`
	Message     string    `json:"message"`
	Response    string    `json:"response"`
	SubmittedAt time.Time `json:"submittedAt"`
	Username    string    `json:"username"`
}

func NewChatMessageResponse(m *models.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:          m.ID,
		ChatRole:    m.ChatRole,
		Message:     m.Message,
		Response:    m.Response,
		SubmittedAt: m.SubmittedAt,
		Username:    m.Username,
	}
}
