package setup

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ProviderGroq    = "groq"
	ProviderOpenAI  = "openai"
	ProviderBedrock = "bedrock"
	ProviderLocal   = "local"
	ProviderHashing = "hashing"
)

var defaultCORSOrigins = []string{
	"http://localhost:5173",
	"https://stock-predictor-peach.vercel.app",
}

type Config struct {
	Port     string
	LogLevel string

	LLMProvider   string
	GroqAPIKey    string
	GroqModelID   string
	OpenAIKey     string
	OpenAIModelID string
	OpenAIBaseURL string
	AWSRegion     string
	ClaudeModelID string

	EmbeddingProvider  string
	EmbeddingModelID   string
	EmbeddingBaseURL   string
	EmbeddingAPIKey    string
	EmbeddingDimension int

	CORSAllowedOrigins []string
	RequestTimeout     time.Duration

	RedisAddr     string
	RedisPassword string
	EvalStream    string
}

// StartupConfigError reports configuration the process cannot start without.
type StartupConfigError struct {
	Key    string
	Reason string
}

func (e *StartupConfigError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Key, e.Reason)
}

func LoadConfig() *Config {
	return &Config{
		Port:     getEnv("PORT", "10000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		LLMProvider:   strings.ToLower(getEnv("LLM_PROVIDER", ProviderGroq)),
		GroqAPIKey:    getEnv("GROQ_API_KEY", ""),
		GroqModelID:   getEnv("GROQ_MODEL_ID", "llama3-8b-8192"),
		OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIModelID: getEnv("OPENAI_MODEL_ID", "gpt-4o-mini"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID: getEnv("CLAUDE_MODEL_ID", ""),

		EmbeddingProvider:  strings.ToLower(getEnv("EMBEDDING_PROVIDER", ProviderLocal)),
		EmbeddingModelID:   getEnv("EMBEDDING_MODEL_ID", ""),
		EmbeddingBaseURL:   getEnv("EMBEDDING_BASE_URL", ""),
		EmbeddingAPIKey:    getEnv("EMBEDDING_API_KEY", ""),
		EmbeddingDimension: getEnvInt("EMBEDDING_DIMENSION", 0),

		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", defaultCORSOrigins),
		RequestTimeout:     getEnvDuration("REQUEST_TIMEOUT", 120*time.Second),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		EvalStream:    getEnv("EVAL_STREAM", "eval-events"),
	}
}

// Validate checks that the selected providers have their credentials.
func (c *Config) Validate() error {
	switch c.LLMProvider {
	case ProviderGroq:
		if c.GroqAPIKey == "" {
			return &StartupConfigError{Key: "GROQ_API_KEY", Reason: "not set"}
		}
	case ProviderOpenAI:
		if c.OpenAIKey == "" {
			return &StartupConfigError{Key: "OPENAI_API_KEY", Reason: "not set"}
		}
	case ProviderBedrock:
		if c.ClaudeModelID == "" {
			return &StartupConfigError{Key: "CLAUDE_MODEL_ID", Reason: "not set"}
		}
	default:
		return &StartupConfigError{Key: "LLM_PROVIDER", Reason: fmt.Sprintf("unknown provider %q", c.LLMProvider)}
	}

	switch c.EmbeddingProvider {
	case ProviderLocal, ProviderHashing:
	case ProviderOpenAI:
		if c.embeddingAPIKey() == "" {
			return &StartupConfigError{Key: "EMBEDDING_API_KEY", Reason: "not set"}
		}
	case ProviderBedrock:
	default:
		return &StartupConfigError{Key: "EMBEDDING_PROVIDER", Reason: fmt.Sprintf("unknown provider %q", c.EmbeddingProvider)}
	}

	if c.EmbeddingDimension < 0 {
		return &StartupConfigError{Key: "EMBEDDING_DIMENSION", Reason: "must not be negative"}
	}

	return nil
}

// embeddingAPIKey falls back to the OpenAI chat key.
func (c *Config) embeddingAPIKey() string {
	if c.EmbeddingAPIKey != "" {
		return c.EmbeddingAPIKey
	}
	return c.OpenAIKey
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	// Bare numbers are seconds.
	if seconds, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}

	return values
}
