package models

import (
	"chatbot-ai/internal/constants"
	"time"
)

// ChatMessage is one persisted user/assistant exchange.
type ChatMessage struct {
	ID          string    `gorm:"column:id;type:varchar(36);primaryKey" bson:"_id" json:"id"`
	ChatRole    string    `gorm:"column:chat_role;type:text;not null" bson:"chat_role" json:"chatRole"`
	Message     string    `gorm:"column:message;type:text;not null" bson:"message" json:"message"`
	Response    string    `gorm:"column:response;type:text" bson:"response" json:"response"`
	SubmittedAt time.Time `gorm:"column:submitted_at;not null;index" bson:"submitted_at" json:"submittedAt"`
	Username    string    `gorm:"column:username;type:varchar(255);not null;index" bson:"username" json:"username"`
}

func (ChatMessage) TableName() string {
	return constants.ChatInteractionTable
}

// NewChatMessage builds the provisional record for a submission. The response
// stays Pending until the completion step resolves it.
func NewChatMessage(role, message, username string) *ChatMessage {
	return &ChatMessage{
		ChatRole:    role,
		Message:     message,
		Response:    constants.PendingResponse,
		SubmittedAt: time.Now().UTC(),
		Username:    username,
	}
}
