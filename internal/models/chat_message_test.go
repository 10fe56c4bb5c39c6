package models

import (
	"chatbot-ai/internal/constants"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewChatMessage(t *testing.T) {
	before := time.Now().UTC()
	m := NewChatMessage("user", "Hello", "alice")

	assert.Empty(t, m.ID)
	assert.Equal(t, constants.PendingResponse, m.Response)
	assert.False(t, m.SubmittedAt.Before(before))
	assert.Equal(t, time.UTC, m.SubmittedAt.Location())
	assert.Equal(t, "chat_interaction", m.TableName())
}
