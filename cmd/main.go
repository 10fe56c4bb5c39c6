package main

import (
	"chatbot-ai/config"
	"chatbot-ai/internal/apis/routes"
	"chatbot-ai/internal/di"
	"chatbot-ai/internal/middleware"
	"chatbot-ai/pkg/logger"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("Failed to load environment variables: %v", err)
	}

	zapLogger := logger.New(logger.Config{
		Level:    env.LogLevel,
		FilePath: env.LogFilePath,
		IsProd:   env.IsProduction(),
	})
	defer func() { _ = zapLogger.Sync() }()

	// Initialize dependencies
	container, err := di.NewContainer(env, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to build dependency container", zap.Error(err))
	}

	chatHandler, err := di.GetChatHandler(container)
	if err != nil {
		zapLogger.Fatal("Failed to get chat handler", zap.Error(err))
	}

	if env.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	ginApp := gin.New()
	ginApp.Use(middleware.CustomRecoveryMiddleware(zapLogger))
	ginApp.Use(middleware.RequestLogger(zapLogger))
	ginApp.Use(cors.New(cors.Config{
		AllowOrigins:     []string{env.CorsAllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupDefaultRoutes(ginApp, chatHandler)

	srv := &http.Server{
		Addr:    ":" + env.Port,
		Handler: ginApp,
	}

	go func() {
		zapLogger.Info("Starting server",
			zap.String("port", env.Port),
			zap.String("environment", env.Environment),
			zap.String("chat_store", env.ChatStore),
			zap.String("completion_provider", env.CompletionProvider),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("ChatBot failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("ChatBot is shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("ChatBot forced to shutdown", zap.Error(err))
	}
	if err := di.Shutdown(ctx, container); err != nil {
		zapLogger.Error("Failed to close chat store", zap.Error(err))
	}

	zapLogger.Info("ChatBot has been shut down")
}
