package config

import "time"

// Environment variable names
const (
	EnvDataDir           = "DATA_DIR"
	EnvOutputDir         = "OUTPUT_DIR"
	EnvImageDir          = "IMAGE_DIR"
	EnvPipelineConfig    = "PIPELINE_CONFIG"
	EnvWantListDSN       = "WANTLIST_DSN"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvLogDir            = "LOG_DIR"
	EnvEnvironment       = "ENVIRONMENT"
	EnvPort              = "PORT"
	EnvTrustedProxies    = "TRUSTED_PROXIES"
	EnvIgnoredCategories = "IGNORED_CATEGORIES"
	EnvCacheSize         = "CACHE_SIZE"
	EnvCacheTTL          = "CACHE_TTL"
	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime = "DB_MAX_CONN_LIFETIME"
)

// Defaults
const (
	DefaultDataDir        = "data"
	DefaultImageDir       = "static/images/items"
	DefaultPipelineConfig = "arcdata.yaml"
	DefaultWantListDSN    = "sqlite://wantlist.db"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultEnvironment    = "dev"
	DefaultPort           = 8080
	DefaultCacheSize      = 512
	DefaultCacheTTL       = 10 * time.Minute
	DefaultDBMaxConns     = 10

	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
)

const categorySeparator = ","

// Error messages
const (
	ErrMsgInvalidPort        = "invalid PORT value"
	ErrMsgInvalidLogLevel    = "invalid LOG_LEVEL"
	ErrMsgInvalidLogFormat   = "invalid LOG_FORMAT"
	ErrMsgInvalidCacheSize   = "CACHE_SIZE must be positive"
	ErrMsgInvalidCacheTTL    = "CACHE_TTL must be positive"
	ErrMsgInvalidDSN         = "WANTLIST_DSN must use postgres:// or sqlite://"
	ErrMsgEmptyDataDir       = "DATA_DIR must not be empty"
	ErrMsgReadPipelineFile   = "failed to read pipeline config"
	ErrMsgDecodePipelineFile = "failed to decode pipeline config"
)
