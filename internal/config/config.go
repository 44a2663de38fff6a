// Package config handles application configuration.
//
// Go Pattern: Configuration via environment variables with sensible defaults.
// A struct holds the values and a Load function reads them from the
// environment — explicit, no framework magic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// Server settings
	Port    string
	GinMode string // "debug", "release", or "test"

	// OpenAI settings
	OpenAIAPIKey string
	OpenAIModel  string  // Chat model used for contract analysis
	MaxTokens    int     // Output token ceiling for the analysis call
	Temperature  float32 // Sampling temperature (low = deterministic)

	// Outbound document fetch
	FetchTimeout time.Duration

	// CORS
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		// Server defaults
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),

		// OpenAI
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		MaxTokens:    getEnvInt("OPENAI_MAX_TOKENS", 1500),
		Temperature:  getEnvFloat("OPENAI_TEMPERATURE", 0.3),

		// Document fetch — single attempt, bounded timeout, no retries
		FetchTimeout: time.Duration(getEnvInt("FETCH_TIMEOUT_SECONDS", 30)) * time.Second,

		// CORS — the calling UI expects to reach the API from any origin
		AllowedOrigins: []string{getEnv("CORS_ORIGIN", "*")},
	}

	// The API can start without a key (analysis degrades in-band), but in
	// release mode that is almost certainly a deployment mistake.
	if cfg.GinMode == "release" && cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set in production; refusing to start without it")
	}

	if cfg.MaxTokens <= 0 {
		return nil, fmt.Errorf("OPENAI_MAX_TOKENS must be positive, got %d", cfg.MaxTokens)
	}

	return cfg, nil
}

// getEnv reads an environment variable with a fallback default.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getEnvInt reads an integer environment variable with a fallback.
func getEnvInt(key string, fallback int) int {
	str := getEnv(key, "")
	if str == "" {
		return fallback
	}
	val, err := strconv.Atoi(str)
	if err != nil {
		return fallback
	}
	return val
}

// getEnvFloat reads a float environment variable with a fallback.
func getEnvFloat(key string, fallback float32) float32 {
	str := getEnv(key, "")
	if str == "" {
		return fallback
	}
	val, err := strconv.ParseFloat(str, 32)
	if err != nil {
		return fallback
	}
	return float32(val)
}
