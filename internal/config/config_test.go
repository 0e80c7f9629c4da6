package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "AI_PROVIDER", "AI_STRATEGY",
		"GEMINI_API_KEY", "GEMINI_MODEL",
		"OPENAI_API_KEY", "OPENAI_MODEL",
		"MAX_UPLOAD_BYTES", "GENERATE_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, StrategySingleCall, cfg.Strategy)
	assert.Equal(t, int64(50<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 120*time.Second, cfg.GenerateTimeout)
	assert.Empty(t, cfg.APIKey())
}

func TestLoadOpenAIDefaultsToTwoCall(t *testing.T) {
	clearEnv(t)
	t.Setenv("AI_PROVIDER", ProviderOpenAI)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StrategyTwoCall, cfg.Strategy)
	assert.Equal(t, "sk-test", cfg.APIKey())
}

func TestLoadOpenAIRejectsSingleCall(t *testing.T) {
	clearEnv(t)
	t.Setenv("AI_PROVIDER", ProviderOpenAI)
	t.Setenv("AI_STRATEGY", StrategySingleCall)

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadUnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("AI_PROVIDER", "clippy")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")
	t.Setenv("GENERATE_TIMEOUT_SECONDS", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "g-key", cfg.APIKey())
	assert.Equal(t, int64(1048576), cfg.MaxUploadBytes)
	assert.Equal(t, 30*time.Second, cfg.GenerateTimeout)
}

func TestLoadInvalidOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_UPLOAD_BYTES", "not-a-number")
	_, err := Load()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("GENERATE_TIMEOUT_SECONDS", "-5")
	_, err = Load()
	assert.Error(t, err)
}
