package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	CatalogPath    string        // Path to the catalog JSON file
	LogLevel       string        // debug/info/warn/error
	LogFormat      string        // json/text
	Environment    string        // dev/staging/prod
	ServiceName    string
	Version        string
	QuoteCacheSize int           // Max cached market quotes
	QuoteCacheTTL  time.Duration // Lifetime of a cached market quote
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		CatalogPath: getEnv(EnvCatalogPath, DefaultCatalogPath),
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
	}

	size, err := getEnvInt(EnvQuoteCacheSize, DefaultQuoteCacheSize)
	if err != nil {
		return nil, err
	}
	cfg.QuoteCacheSize = size

	ttlSeconds, err := getEnvInt(EnvQuoteCacheTTLSeconds, DefaultQuoteCacheTTLSeconds)
	if err != nil {
		return nil, err
	}
	cfg.QuoteCacheTTL = time.Duration(ttlSeconds) * time.Second

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return parsed, nil
}
