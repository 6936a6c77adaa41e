package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/marketmood/feargreed/internal/marketdata"
)

// Config holds application configuration
type Config struct {
	APIURL           string
	DatabasePath     string
	LogLevel         string
	Port             int
	DevMode          bool
	CacheTTL         time.Duration
	SnapshotSchedule string // cron expression for the daily snapshot job
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		APIURL:           getEnv("FEARGREED_API_URL", marketdata.DefaultEndpoint),
		DatabasePath:     getEnv("DATABASE_PATH", "./data/feargreed.db"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		Port:             getEnvAsInt("GO_PORT", 8001),
		DevMode:          getEnvAsBool("DEV_MODE", false),
		CacheTTL:         time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		SnapshotSchedule: getEnv("SNAPSHOT_SCHEDULE", "0 18 * * 1-5"), // weekdays after US close
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("FEARGREED_API_URL is required")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("CACHE_TTL_SECONDS must not be negative")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
