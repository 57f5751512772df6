package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/ArcCompanion_Go/internal/database"
	"github.com/osse101/ArcCompanion_Go/internal/domain"
)

// Validate rejects values the application cannot run with.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("%s: %d", ErrMsgInvalidPort, c.Port))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("%s: %q", ErrMsgInvalidLogLevel, c.LogLevel))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("%s: %q", ErrMsgInvalidLogFormat, c.LogFormat))
	}
	if strings.TrimSpace(c.DataDir) == "" {
		errs = append(errs, errors.New(ErrMsgEmptyDataDir))
	}
	if c.CacheSize < 1 {
		errs = append(errs, errors.New(ErrMsgInvalidCacheSize))
	}
	if c.CacheTTL <= 0 {
		errs = append(errs, errors.New(ErrMsgInvalidCacheTTL))
	}
	if !database.IsPostgresDSN(c.WantListDSN) && !database.IsSQLiteDSN(c.WantListDSN) {
		errs = append(errs, errors.New(ErrMsgInvalidDSN))
	}

	return errors.Join(errs...)
}

// UniqueCategories trims categories and drops blanks and case-insensitive
// repeats, keeping the first spelling.
func UniqueCategories(categories []string) []string {
	out := make([]string, 0, len(categories))
	seen := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		c = strings.TrimSpace(c)
		key := domain.NormalizeCategory(c)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}
