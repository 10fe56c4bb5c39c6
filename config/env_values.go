package config

import (
	"chatbot-ai/internal/constants"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Environment struct {
	// Server configs
	IsDocker          bool
	Port              string
	Environment       string
	CorsAllowedOrigin string

	// Logging configs
	LogLevel    string
	LogFilePath string

	// Chat store configs
	ChatStore      string
	DBHost         string
	DBPort         int
	DBName         string
	DBUsername     string
	DBPassword     string
	DBSSLMode      string
	DBFilePath     string
	DBMaxOpenConns int
	DBMaxIdleConns int
	MongoURI       string
	MongoDatabase  string

	// Completion configs
	CompletionProvider string

	// OpenAI configs
	OpenAIAPIKey              string
	OpenAIAPIURL              string
	OpenAIModel               string
	OpenAIMaxCompletionTokens int
	OpenAITemperature         float64

	// Gemini configs
	GeminiAPIKey              string
	GeminiModel               string
	GeminiMaxCompletionTokens int
	GeminiTemperature         float64
}

// LoadEnv loads environment variables from .env file if present
// and validates required variables
func LoadEnv() (*Environment, error) {
	env := &Environment{}

	// Check if running in Docker
	env.IsDocker = os.Getenv("IS_DOCKER") == "true"

	// Load .env file only if not running in Docker
	if !env.IsDocker {
		if err := godotenv.Load(); err != nil {
			fmt.Printf("Warning: .env file not found: %v\n", err)
		}
	}

	// Server configs
	env.Port = getEnvWithDefault("PORT", "3000")
	env.Environment = getEnvWithDefault("ENVIRONMENT", "DEVELOPMENT")
	env.CorsAllowedOrigin = getEnvWithDefault("CORS_ALLOWED_ORIGIN", "http://localhost:9000")

	// Logging configs
	env.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")
	env.LogFilePath = getEnvWithDefault("LOG_FILE_PATH", "")

	// Chat store configs
	env.ChatStore = strings.ToLower(getEnvWithDefault("CHAT_STORE", constants.StoreSQLite))
	env.DBHost = getEnvWithDefault("DB_HOST", "localhost")
	env.DBPort = getIntEnvWithDefault("DB_PORT", defaultPortFor(env.ChatStore))
	env.DBName = getEnvWithDefault("DB_NAME", "chatbot")
	env.DBUsername = getEnvWithDefault("DB_USERNAME", "")
	env.DBPassword = getEnvWithDefault("DB_PASSWORD", "")
	env.DBSSLMode = getEnvWithDefault("DB_SSL_MODE", "disable")
	env.DBFilePath = getEnvWithDefault("DB_FILE_PATH", "chatbot.db")
	env.DBMaxOpenConns = getIntEnvWithDefault("DB_MAX_OPEN_CONNS", 20)
	env.DBMaxIdleConns = getIntEnvWithDefault("DB_MAX_IDLE_CONNS", 5)
	env.MongoURI = getEnvWithDefault("MONGODB_URI", "mongodb://localhost:27017/chatbot")
	env.MongoDatabase = getEnvWithDefault("MONGODB_NAME", "chatbot")

	// Completion configs
	env.CompletionProvider = strings.ToLower(getEnvWithDefault("COMPLETION_PROVIDER", constants.OpenAI))

	// OpenAI configs
	env.OpenAIAPIKey = getEnvWithDefault("OPENAI_API_KEY", "")
	env.OpenAIAPIURL = getEnvWithDefault("OPENAI_API_URL", constants.OpenAIBaseURL)
	env.OpenAIModel = getEnvWithDefault("OPENAI_MODEL", constants.OpenAIModel)
	env.OpenAIMaxCompletionTokens = getIntEnvWithDefault("OPENAI_MAX_COMPLETION_TOKENS", 0)
	env.OpenAITemperature = getFloatEnvWithDefault("OPENAI_TEMPERATURE", 0)

	// Gemini configs
	env.GeminiAPIKey = getEnvWithDefault("GEMINI_API_KEY", "")
	env.GeminiModel = getEnvWithDefault("GEMINI_MODEL", constants.GeminiModel)
	env.GeminiMaxCompletionTokens = getIntEnvWithDefault("GEMINI_MAX_COMPLETION_TOKENS", 0)
	env.GeminiTemperature = getFloatEnvWithDefault("GEMINI_TEMPERATURE", 0)

	if err := env.validate(); err != nil {
		return nil, err
	}
	return env, nil
}

// IsProduction reports whether the service runs with production settings.
func (e *Environment) IsProduction() bool {
	return strings.EqualFold(e.Environment, "PRODUCTION")
}

// Helper functions to get environment variables with defaults and validation
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvWithDefault(key string, defaultValue int) int {
	strValue := os.Getenv(key)
	if strValue == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(strValue)
	if err != nil {
		fmt.Printf("Warning: Invalid value for %s, using default: %d\n", key, defaultValue)
		return defaultValue
	}
	return value
}

func getFloatEnvWithDefault(key string, defaultValue float64) float64 {
	strValue := os.Getenv(key)
	if strValue == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(strValue, 64)
	if err != nil {
		fmt.Printf("Warning: Invalid value for %s, using default: %v\n", key, defaultValue)
		return defaultValue
	}
	return value
}

func defaultPortFor(store string) int {
	switch store {
	case constants.StorePostgres:
		return 5432
	case constants.StoreMySQL:
		return 3306
	case constants.StoreClickhouse:
		return 9000
	default:
		return 0
	}
}

func (e *Environment) validate() error {
	if !constants.IsSupportedStore(e.ChatStore) {
		return fmt.Errorf("unsupported CHAT_STORE: %s", e.ChatStore)
	}

	if e.ChatStore == constants.StoreMongoDB && !isValidURI(e.MongoURI) {
		return fmt.Errorf("invalid MONGODB_URI format: %s", e.MongoURI)
	}

	switch e.CompletionProvider {
	case constants.OpenAI:
		if e.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when COMPLETION_PROVIDER=%s", constants.OpenAI)
		}
	case constants.Gemini:
		if e.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when COMPLETION_PROVIDER=%s", constants.Gemini)
		}
	default:
		return fmt.Errorf("unsupported COMPLETION_PROVIDER: %s", e.CompletionProvider)
	}

	return nil
}

func isValidURI(uri string) bool {
	return len(uri) > 10 && strings.Contains(uri, "://")
}
