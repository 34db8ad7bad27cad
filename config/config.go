package config

import (
	"os"
)

// Default model endpoints on the HuggingFace inference API. Both can be
// overridden via environment variables, e.g. to point at a local fake.
const (
	defaultSummarizeURL = "https://api-inference.huggingface.co/models/facebook/bart-large-cnn"
	defaultSentimentURL = "https://api-inference.huggingface.co/models/distilbert-base-uncased-finetuned-sst-2-english"
)

// Config holds all runtime configuration. It is built once at startup and
// injected into every component; nothing reads the environment after Load.
type Config struct {
	Port          string
	Env           string
	LogLevel      string
	DBPath        string
	HFAPIKey      string
	SummarizeURL  string
	SentimentURL  string
	AllowedOrigin string
}

// Load builds a Config from environment variables, applying defaults for
// anything unset.
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8000"),
		Env:           getEnv("APP_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		DBPath:        getEnv("DB_PATH", "explorer.db"),
		HFAPIKey:      getEnv("HF_API_KEY", ""),
		SummarizeURL:  getEnv("SUMMARIZE_MODEL_URL", defaultSummarizeURL),
		SentimentURL:  getEnv("SENTIMENT_MODEL_URL", defaultSentimentURL),
		AllowedOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
	}
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
