package config

// Environment variable names
const (
	EnvCatalogPath          = "CATALOG_PATH"
	EnvLogLevel             = "LOG_LEVEL"
	EnvLogFormat            = "LOG_FORMAT"
	EnvEnvironment          = "ENVIRONMENT"
	EnvServiceName          = "SERVICE_NAME"
	EnvVersion              = "VERSION"
	EnvQuoteCacheSize       = "QUOTE_CACHE_SIZE"
	EnvQuoteCacheTTLSeconds = "QUOTE_CACHE_TTL_SECONDS"
)

// Default values
const (
	DefaultCatalogPath          = "configs/catalog.json"
	DefaultLogLevel             = "INFO"
	DefaultLogFormat            = "text"
	DefaultEnvironment          = "dev"
	DefaultServiceName          = "itemcore"
	DefaultVersion              = "dev"
	DefaultQuoteCacheSize       = 1024
	DefaultQuoteCacheTTLSeconds = 60
)
