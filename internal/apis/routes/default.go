package routes

import (
	"chatbot-ai/internal/apis/dtos"
	"chatbot-ai/internal/apis/handlers"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupDefaultRoutes(router *gin.Engine, chatHandler *handlers.ChatHandler) {
	// Health check route
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dtos.Response{
			Success: true,
			Data:    "Server is healthy!",
		})
	})

	SetupChatRoutes(router, chatHandler)
}
