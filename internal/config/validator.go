package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// ValidateEnv checks that required environment variables are present when the
// process runs outside dev. Unlike Load, this fails fast instead of falling
// back to defaults, so deployment mistakes surface at startup.
func ValidateEnv() error {
	env := os.Getenv(EnvEnvironment)
	if env == "" || env == DefaultEnvironment {
		return nil
	}

	required := []string{
		EnvCatalogPath,
		EnvLogLevel,
		EnvLogFormat,
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// Validate checks the loaded configuration for nonsensical values.
func (c *Config) Validate() error {
	if c.CatalogPath == "" {
		return fmt.Errorf("catalog path must not be empty")
	}
	if c.QuoteCacheSize <= 0 {
		return fmt.Errorf("quote cache size must be positive, got %d", c.QuoteCacheSize)
	}
	if c.QuoteCacheTTL <= 0 {
		return fmt.Errorf("quote cache TTL must be positive, got %s", c.QuoteCacheTTL)
	}
	if c.QuoteCacheTTL > 24*time.Hour {
		return fmt.Errorf("quote cache TTL must not exceed 24h, got %s", c.QuoteCacheTTL)
	}
	return nil
}
