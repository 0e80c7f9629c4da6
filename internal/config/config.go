package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Supported AI providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Invocation strategies. Single-call asks the model for one JSON object
// holding both the transcript and the summary; two-call transcribes first and
// summarizes the transcript text in a second request.
const (
	StrategySingleCall = "single_call"
	StrategyTwoCall    = "two_call"
)

// Config holds all runtime settings for the service. Values are read from the
// environment once at startup and passed down explicitly.
type Config struct {
	Port string

	Provider string
	Strategy string

	GeminiAPIKey string
	GeminiModel  string

	OpenAIAPIKey string
	OpenAIModel  string

	MaxUploadBytes  int64
	GenerateTimeout time.Duration
}

// Load reads the service configuration from environment variables. A missing
// API key is not an error here; the handler reports it as a configuration
// failure on each request so the server still boots and answers health checks.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		Provider:        getEnvOrDefault("AI_PROVIDER", ProviderGemini),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		MaxUploadBytes:  50 << 20,
		GenerateTimeout: 120 * time.Second,
	}

	switch cfg.Provider {
	case ProviderGemini:
		cfg.Strategy = getEnvOrDefault("AI_STRATEGY", StrategySingleCall)
	case ProviderOpenAI:
		// Whisper returns plain transcript text, so the single-call JSON
		// prompt cannot be answered by this provider.
		cfg.Strategy = getEnvOrDefault("AI_STRATEGY", StrategyTwoCall)
		if cfg.Strategy == StrategySingleCall {
			return nil, fmt.Errorf("AI_STRATEGY=%s is not supported with AI_PROVIDER=%s", StrategySingleCall, ProviderOpenAI)
		}
	default:
		return nil, fmt.Errorf("unknown AI_PROVIDER %q", cfg.Provider)
	}

	if cfg.Strategy != StrategySingleCall && cfg.Strategy != StrategyTwoCall {
		return nil, fmt.Errorf("unknown AI_STRATEGY %q", cfg.Strategy)
	}

	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_BYTES value %q", v)
		}
		cfg.MaxUploadBytes = n
	}

	if v := os.Getenv("GENERATE_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid GENERATE_TIMEOUT_SECONDS value %q", v)
		}
		cfg.GenerateTimeout = time.Duration(n) * time.Second
	}

	return cfg, nil
}

// APIKey returns the credential for the configured provider. Empty means the
// credential is not set; handlers report that as a configuration error.
func (c *Config) APIKey() string {
	if c.Provider == ProviderOpenAI {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

// getEnvOrDefault returns the environment variable value or a default value if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
