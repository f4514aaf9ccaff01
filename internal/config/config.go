package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// YouTube Data API configuration
	YouTubeAPIKey     string
	YouTubeBaseURL    string
	YouTubeTimeout    time.Duration
	YouTubePageSize   int
	YouTubeRateLimit  float64
	MaxResultsCap     int
	DefaultMaxResults int

	// Gemini API configuration
	GeminiAPIKey  string
	GeminiBaseURL string
	GeminiModel   string
	GeminiTimeout time.Duration

	// Analysis configuration
	PromptMaxChars    int
	ClassifyBatchSize int
	TopKeywords       int
	TopComments       int

	// Session configuration
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables. The two API
// credentials have no defaults: a missing one fails startup here, so
// it is reported as a configuration error instead of surfacing later
// as a downstream API failure.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		ReadTimeout:          getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:         getEnvDuration("HTTP_WRITE_TIMEOUT", 5*time.Minute),
		IdleTimeout:          getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		YouTubeAPIKey:        os.Getenv("YOUTUBE_API_KEY"),
		YouTubeBaseURL:       getEnv("YOUTUBE_API_BASE_URL", "https://www.googleapis.com/youtube/v3"),
		YouTubeTimeout:       getEnvDuration("YOUTUBE_TIMEOUT", 15*time.Second),
		YouTubePageSize:      getEnvInt("YOUTUBE_PAGE_SIZE", 100),
		YouTubeRateLimit:     getEnvFloat("YOUTUBE_RATE_LIMIT", 5),
		MaxResultsCap:        getEnvInt("MAX_RESULTS_CAP", 5000),
		DefaultMaxResults:    getEnvInt("DEFAULT_MAX_RESULTS", 1000),
		GeminiAPIKey:         os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL:        getEnv("GEMINI_API_BASE_URL", "https://generativelanguage.googleapis.com"),
		GeminiModel:          getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiTimeout:        getEnvDuration("GEMINI_TIMEOUT", 60*time.Second),
		PromptMaxChars:       getEnvInt("PROMPT_MAX_CHARS", 30000),
		ClassifyBatchSize:    getEnvInt("CLASSIFY_BATCH_SIZE", 50),
		TopKeywords:          getEnvInt("TOP_KEYWORDS", 25),
		TopComments:          getEnvInt("TOP_COMMENTS", 10),
		SessionTTL:           getEnvDuration("SESSION_TTL", time.Hour),
		SessionSweepInterval: getEnvDuration("SESSION_SWEEP_INTERVAL", 5*time.Minute),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.YouTubeAPIKey == "" {
		return fmt.Errorf("YOUTUBE_API_KEY is required")
	}
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.YouTubePageSize < 1 || c.YouTubePageSize > 100 {
		return fmt.Errorf("YOUTUBE_PAGE_SIZE must be between 1 and 100")
	}
	if c.MaxResultsCap < 1 {
		return fmt.Errorf("MAX_RESULTS_CAP must be at least 1")
	}
	if c.DefaultMaxResults < 1 || c.DefaultMaxResults > c.MaxResultsCap {
		return fmt.Errorf("DEFAULT_MAX_RESULTS must be between 1 and MAX_RESULTS_CAP")
	}
	if c.YouTubeRateLimit <= 0 {
		return fmt.Errorf("YOUTUBE_RATE_LIMIT must be positive")
	}
	if c.PromptMaxChars < 1 {
		return fmt.Errorf("PROMPT_MAX_CHARS must be at least 1")
	}
	if c.ClassifyBatchSize < 1 {
		return fmt.Errorf("CLASSIFY_BATCH_SIZE must be at least 1")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat gets an environment variable as float64 with a default value.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
