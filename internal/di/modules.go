package di

import (
	"chatbot-ai/config"
	"chatbot-ai/internal/apis/handlers"
	"chatbot-ai/internal/constants"
	"chatbot-ai/internal/repositories"
	"chatbot-ai/internal/services"
	"chatbot-ai/pkg/database"
	"chatbot-ai/pkg/llm"
	"chatbot-ai/pkg/mongodb"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"
)

// Closers collects the shutdown hooks of the connections opened by the
// container.
type Closers struct {
	mu    sync.Mutex
	funcs []func(context.Context) error
}

func (c *Closers) add(fn func(context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, fn)
}

// Close runs the hooks in reverse order of registration.
func (c *Closers) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	for i := len(c.funcs) - 1; i >= 0; i-- {
		if err := c.funcs[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	c.funcs = nil
	return errors.Join(errs...)
}

// NewContainer registers every constructor of the service. Nothing is
// connected until the first Invoke asks for it.
func NewContainer(env *config.Environment, logger *zap.Logger) (*dig.Container, error) {
	container := dig.New()
	closers := &Closers{}

	providers := []struct {
		name string
		fn   interface{}
	}{
		{"environment", func() *config.Environment { return env }},
		{"logger", func() *zap.Logger { return logger }},
		{"closers", func() *Closers { return closers }},
		{"chat message repository", provideChatMessageRepository},
		{"LLM manager", provideLLMManager},
		{"LLM client", func(env *config.Environment, manager *llm.Manager) (llm.Client, error) {
			return manager.GetClient(env.CompletionProvider)
		}},
		{"chat service", services.NewChatService},
		{"chat handler", handlers.NewChatHandler},
	}

	for _, p := range providers {
		if err := container.Provide(p.fn); err != nil {
			return nil, fmt.Errorf("failed to provide %s: %w", p.name, err)
		}
	}
	return container, nil
}

func provideChatMessageRepository(env *config.Environment, closers *Closers, logger *zap.Logger) (repositories.ChatMessageRepository, error) {
	if env.ChatStore == constants.StoreMongoDB {
		ctx := context.Background()
		mongoClient, err := mongodb.InitializeDatabaseConnection(ctx, mongodb.MongoDbConfigModel{
			ConnectionUrl: env.MongoURI,
			DatabaseName:  env.MongoDatabase,
		})
		if err != nil {
			return nil, err
		}
		closers.add(mongoClient.Close)

		if err := repositories.EnsureMongoIndexes(ctx, mongoClient); err != nil {
			return nil, err
		}
		logger.Info("chat store ready", zap.String("store", env.ChatStore), zap.String("database", env.MongoDatabase))
		return repositories.NewChatMessageMongoRepository(mongoClient), nil
	}

	db, err := database.New(&database.Config{
		Driver:          env.ChatStore,
		Host:            env.DBHost,
		Port:            env.DBPort,
		User:            env.DBUsername,
		Password:        env.DBPassword,
		DBName:          env.DBName,
		SSLMode:         env.DBSSLMode,
		FilePath:        env.DBFilePath,
		MaxIdleConns:    env.DBMaxIdleConns,
		MaxOpenConns:    env.DBMaxOpenConns,
		ConnMaxLifetime: time.Hour,
	})
	if err != nil {
		return nil, err
	}
	closers.add(func(context.Context) error { return database.Close(db) })

	if err := repositories.Migrate(db); err != nil {
		return nil, err
	}
	logger.Info("chat store ready", zap.String("store", env.ChatStore), zap.String("database", dbLabel(env)))
	return repositories.NewChatMessageRepository(db), nil
}

func dbLabel(env *config.Environment) string {
	if env.ChatStore == constants.StoreSQLite {
		return env.DBFilePath
	}
	return env.DBName
}

func provideLLMManager(env *config.Environment, closers *Closers, logger *zap.Logger) (*llm.Manager, error) {
	manager := llm.NewManager(logger)

	var cfg llm.Config
	switch env.CompletionProvider {
	case constants.OpenAI:
		cfg = llm.Config{
			Provider:            constants.OpenAI,
			Model:               env.OpenAIModel,
			APIKey:              env.OpenAIAPIKey,
			BaseURL:             env.OpenAIAPIURL,
			MaxCompletionTokens: env.OpenAIMaxCompletionTokens,
			Temperature:         env.OpenAITemperature,
		}
	case constants.Gemini:
		cfg = llm.Config{
			Provider:            constants.Gemini,
			Model:               env.GeminiModel,
			APIKey:              env.GeminiAPIKey,
			MaxCompletionTokens: env.GeminiMaxCompletionTokens,
			Temperature:         env.GeminiTemperature,
		}
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s", env.CompletionProvider)
	}

	if err := manager.RegisterClient(env.CompletionProvider, cfg); err != nil {
		return nil, err
	}
	closers.add(func(context.Context) error { return manager.Close() })
	logger.Info("completion provider ready", zap.String("provider", cfg.Provider), zap.String("model", cfg.Model))
	return manager, nil
}

// GetChatHandler builds the chat handler and everything it depends on.
func GetChatHandler(container *dig.Container) (*handlers.ChatHandler, error) {
	var handler *handlers.ChatHandler
	err := container.Invoke(func(h *handlers.ChatHandler) {
		handler = h
	})
	if err != nil {
		return nil, err
	}
	return handler, nil
}

// Shutdown closes whatever connections the container opened.
func Shutdown(ctx context.Context, container *dig.Container) error {
	return container.Invoke(func(closers *Closers) error {
		return closers.Close(ctx)
	})
}
