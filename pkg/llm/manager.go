package llm

import (
	"chatbot-ai/internal/constants"
	"errors"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

type Manager struct {
	clients map[string]Client
	mu      sync.RWMutex
	logger  *zap.Logger
}

func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		clients: make(map[string]Client),
		logger:  logger,
	}
}

func (m *Manager) RegisterClient(name string, config Config) error {
	var client Client
	var err error

	switch config.Provider {
	case constants.OpenAI:
		client, err = NewOpenAIClient(config, m.logger)
	case constants.Gemini:
		client, err = NewGeminiClient(config, m.logger)
	default:
		return fmt.Errorf("unsupported LLM provider: %s", config.Provider)
	}

	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}

	m.Register(name, client)
	return nil
}

// Register adds an already constructed client under name.
func (m *Manager) Register(name string, client Client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients[name] = client
}

func (m *Manager) GetClient(name string) (Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	client, exists := m.clients[name]
	if !exists {
		return nil, fmt.Errorf("LLM client not found: %s", name)
	}

	return client, nil
}

// Close releases clients that hold connections of their own.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for name, client := range m.clients {
		if closer, ok := client.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close %s: %w", name, err))
			}
		}
	}
	return errors.Join(errs...)
}
