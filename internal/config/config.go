package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/osse101/ArcCompanion_Go/internal/pipeline"
	"github.com/osse101/ArcCompanion_Go/internal/storage"
)

// Config holds the application configuration
type Config struct {
	Environment string
	LogLevel    string
	LogFormat   string
	// LogDir enables session log files when set
	LogDir string
	Port   int
	// TrustedProxies may set X-Forwarded-For
	TrustedProxies []string

	DataDir        string
	OutputDir      string
	ImageDir       string
	PipelineConfig string

	WantListDSN       string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	IgnoredCategories []string
	CacheSize         int
	CacheTTL          time.Duration

	Pipeline PipelineFile
}

// PipelineFile is the optional YAML file tuning a pipeline run.
type PipelineFile struct {
	Include           pipeline.Include `yaml:"include"`
	IgnoredCategories []string         `yaml:"ignoredCategories"`
	Files             storage.Layout   `yaml:"files"`
}

// DefaultPipelineFile returns the settings used when no pipeline file exists.
func DefaultPipelineFile() PipelineFile {
	return PipelineFile{
		Include: pipeline.IncludeAll(),
		Files:   storage.DefaultLayout(),
	}
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:    getEnv(EnvEnvironment, DefaultEnvironment),
		LogLevel:       strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:      strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:         getEnv(EnvLogDir, ""),
		DataDir:        getEnv(EnvDataDir, DefaultDataDir),
		OutputDir:      getEnv(EnvOutputDir, ""),
		ImageDir:       getEnv(EnvImageDir, DefaultImageDir),
		PipelineConfig: getEnv(EnvPipelineConfig, DefaultPipelineConfig),
		WantListDSN:    getEnv(EnvWantListDSN, DefaultWantListDSN),
		CacheSize:      getEnvAsInt(EnvCacheSize, DefaultCacheSize),
		CacheTTL:       getEnvAsDuration(EnvCacheTTL, DefaultCacheTTL),

		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime),
	}

	portStr := getEnv(EnvPort, strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	cfg.TrustedProxies = splitList(getEnv(EnvTrustedProxies, ""))

	if err := cfg.UsePipelineFile(cfg.PipelineConfig); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UsePipelineFile loads the pipeline file at path into c. IGNORED_CATEGORIES,
// when set, still overrides the file's ignored categories.
func (c *Config) UsePipelineFile(path string) error {
	pf, err := LoadPipelineFile(path)
	if err != nil {
		return err
	}
	c.PipelineConfig = path
	c.Pipeline = pf

	if raw, ok := os.LookupEnv(EnvIgnoredCategories); ok {
		c.IgnoredCategories = UniqueCategories(strings.Split(raw, categorySeparator))
	} else {
		c.IgnoredCategories = UniqueCategories(pf.IgnoredCategories)
	}
	return nil
}

// LoadPipelineFile reads the YAML pipeline file at path. A missing file yields
// the defaults; keys absent from the file keep their default values.
func LoadPipelineFile(path string) (PipelineFile, error) {
	pf := DefaultPipelineFile()
	if path == "" {
		return pf, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return pf, nil
	}
	if err != nil {
		return pf, fmt.Errorf("%s %s: %w", ErrMsgReadPipelineFile, path, err)
	}

	if err := yaml.Unmarshal(data, &pf); err != nil {
		return DefaultPipelineFile(), fmt.Errorf("%s %s: %w", ErrMsgDecodePipelineFile, path, err)
	}
	pf.Files = pf.Files.WithDefaults()
	return pf, nil
}

// splitList splits a comma separated value, dropping blank elements
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, categorySeparator) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back on absence or parse errors
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsDuration parses a time.Duration variable, falling back on absence or parse errors
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
