package routes

import (
	"chatbot-ai/internal/apis/handlers"

	"github.com/gin-gonic/gin"
)

func SetupChatRoutes(router *gin.Engine, chatHandler *handlers.ChatHandler) {
	router.POST("/chat/add", chatHandler.Submit)
	router.GET("/chats/user", chatHandler.ListByUser)
}
