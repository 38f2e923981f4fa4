// Package config loads application configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv   string
	LogLevel string
	OwnerID  string

	// Notion data source
	NotionToken      string
	NotionDatabaseID string
	FetchWindowDays  int

	// OpenAI insight generator
	OpenAIAPIKey string
	OpenAIModel  string

	// Database (goal store)
	DatabaseDriver string
	DatabaseURL    string
	SQLitePath     string

	// Redis record cache
	RedisURL string
	CacheTTL time.Duration

	// RabbitMQ alert bus
	RabbitMQURL string
}

// Load loads configuration from environment variables. A .env file in
// the working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		OwnerID:  getEnv("DAYBOOK_OWNER_ID", "default"),

		NotionToken:      getEnv("NOTION_TOKEN", ""),
		NotionDatabaseID: getEnv("NOTION_DATABASE_ID", ""),
		FetchWindowDays:  getIntEnv("FETCH_WINDOW_DAYS", 90),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		DatabaseDriver: getEnv("DATABASE_DRIVER", ""),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		SQLitePath:     getEnv("SQLITE_PATH", ""),

		RedisURL: getEnv("REDIS_URL", ""),
		CacheTTL: getDurationEnv("CACHE_TTL", 15*time.Minute),

		RabbitMQURL: getEnv("RABBITMQ_URL", ""),
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
