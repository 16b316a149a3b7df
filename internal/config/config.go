package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// It is built once at startup and treated as read-only afterwards.
type Config struct {
	LLMBaseURL   string
	LLMModelName string
	LLMAPIKey    string
	LLMMaxTokens int

	LMSBaseURL string

	UpstreamTimeout   time.Duration
	UpstreamRateLimit int // requests per minute, 0 means unlimited

	ProfanityWordsPath string

	APIPort   string
	LogLevel  slog.Level
	LogFormat string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	// Walk up towards the project root looking for a .env file
	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ {
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	cfg := &Config{
		LLMBaseURL:         getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		LLMModelName:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		LLMAPIKey:          getEnv("OPENAI_API_KEY", ""),
		LMSBaseURL:         strings.TrimRight(getEnv("LMS_BASE_URL", "https://canvas.instructure.com"), "/"),
		ProfanityWordsPath: getEnv("PROFANITY_WORDS_FILE", ""),
		APIPort:            getEnv("PORT", "5000"),
		LogFormat:          strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	if cfg.LLMAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}

	maxTokens, err := strconv.Atoi(getEnv("OPENAI_MAX_TOKENS", "1024"))
	if err != nil {
		return nil, fmt.Errorf("OPENAI_MAX_TOKENS must be a valid integer: %w", err)
	}
	if maxTokens <= 0 {
		return nil, fmt.Errorf("OPENAI_MAX_TOKENS must be greater than 0")
	}
	cfg.LLMMaxTokens = maxTokens

	timeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("UPSTREAM_TIMEOUT must be a valid duration: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("UPSTREAM_TIMEOUT must be greater than 0")
	}
	cfg.UpstreamTimeout = timeout

	rateLimit, err := strconv.Atoi(getEnv("UPSTREAM_RATE_LIMIT", "0"))
	if err != nil {
		return nil, fmt.Errorf("UPSTREAM_RATE_LIMIT must be a valid integer: %w", err)
	}
	if rateLimit < 0 {
		return nil, fmt.Errorf("UPSTREAM_RATE_LIMIT must not be negative")
	}
	cfg.UpstreamRateLimit = rateLimit

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("LOG_FORMAT must be json or text, got %q", cfg.LogFormat)
	}

	return cfg, nil
}

// parseLogLevel maps a LOG_LEVEL value onto a slog level.
func parseLogLevel(value string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}
	return level, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
