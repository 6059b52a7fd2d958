// Package config reads process configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	LogMode string

	// DatabasePath is the sqlite file holding saved projects.
	DatabasePath string

	OpenAIAPIKey     string
	OpenAIBaseURL    string
	OpenAIModel      string
	OpenAITimeout    time.Duration
	OpenAIMaxRetries int

	// OCRLanguage is the tesseract language used for scanned sheets.
	OCRLanguage string
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		LogMode:          getEnv("MCQSHEET_LOG_MODE", "dev"),
		DatabasePath:     getEnv("MCQSHEET_DB_PATH", "./mcqsheet.db"),
		OpenAIAPIKey:     strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL:    strings.TrimRight(getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"), "/"),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAITimeout:    time.Duration(getInt("OPENAI_TIMEOUT_SECONDS", 60)) * time.Second,
		OpenAIMaxRetries: getInt("OPENAI_MAX_RETRIES", 3),
		OCRLanguage:      getEnv("MCQSHEET_OCR_LANG", "eng"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// getInt reads a non-negative integer variable, falling back to the default
// when it is unset or unparsable.
func getInt(key string, defaultValue int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(v)
	if err != nil || i < 0 {
		return defaultValue
	}
	return i
}
