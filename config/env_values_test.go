package config

import (
	"chatbot-ai/internal/constants"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("IS_DOCKER", "true")
	t.Setenv("CHAT_STORE", "")
	t.Setenv("COMPLETION_PROVIDER", "")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("PORT", "")
}

func TestLoadEnvDefaults(t *testing.T) {
	setBaseEnv(t)

	env, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "3000", env.Port)
	assert.Equal(t, constants.StoreSQLite, env.ChatStore)
	assert.Equal(t, constants.OpenAI, env.CompletionProvider)
	assert.Equal(t, constants.OpenAIModel, env.OpenAIModel)
	assert.Equal(t, constants.OpenAIBaseURL, env.OpenAIAPIURL)
	assert.False(t, env.IsProduction())
}

func TestLoadEnvStoreDefaultsPort(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("CHAT_STORE", "Postgres")

	env, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, constants.StorePostgres, env.ChatStore)
	assert.Equal(t, 5432, env.DBPort)
}

func TestLoadEnvRejectsUnknownStore(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("CHAT_STORE", "cassandra")

	_, err := LoadEnv()
	assert.ErrorContains(t, err, "unsupported CHAT_STORE")
}

func TestLoadEnvRequiresProviderKey(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("OPENAI_API_KEY", "")

	_, err := LoadEnv()
	assert.ErrorContains(t, err, "OPENAI_API_KEY")

	t.Setenv("COMPLETION_PROVIDER", "gemini")
	_, err = LoadEnv()
	assert.ErrorContains(t, err, "GEMINI_API_KEY")

	t.Setenv("GEMINI_API_KEY", "g-test")
	env, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, constants.Gemini, env.CompletionProvider)
}

func TestNumericFallbacks(t *testing.T) {
	t.Setenv("SOME_INT", "abc")
	t.Setenv("SOME_FLOAT", "0.7")

	assert.Equal(t, 7, getIntEnvWithDefault("SOME_INT", 7))
	assert.InDelta(t, 0.7, getFloatEnvWithDefault("SOME_FLOAT", 0), 1e-9)
	assert.InDelta(t, 0.2, getFloatEnvWithDefault("MISSING_FLOAT_KEY", 0.2), 1e-9)
}
