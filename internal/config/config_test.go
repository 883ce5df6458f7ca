package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "AI_PROVIDER", "MONGO_URI", "DATABASE_NAME", "INTERVIEW_TOPIC", "LLM_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "interview_assistant", cfg.DatabaseName)
	assert.Equal(t, "fullstack", cfg.Topic)
	assert.Equal(t, 30*time.Second, cfg.LLMTimeout)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AI_PROVIDER", "gemini")
	t.Setenv("INTERVIEW_TOPIC", "backend")
	t.Setenv("LLM_TIMEOUT", "45s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "backend", cfg.Topic)
	assert.Equal(t, 45*time.Second, cfg.LLMTimeout)
}

func TestLoadConfigRejectsUnknownProvider(t *testing.T) {
	t.Setenv("AI_PROVIDER", "llama")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported AI provider")
}

func TestLoadConfigBadTimeoutFallsBack(t *testing.T) {
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("LLM_TIMEOUT", "not-a-duration")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.LLMTimeout)
}
