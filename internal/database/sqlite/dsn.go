package sqlite

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/osse101/ArcCompanion_Go/internal/database"
)

const memoryPath = ":memory:"

// parseDSN turns a sqlite:// DSN into the path modernc.org/sqlite expects.
// Relative paths are anchored at the working directory and query
// parameters are passed through untouched.
func parseDSN(dsn string) (string, error) {
	if !database.IsSQLiteDSN(dsn) {
		return "", fmt.Errorf("%s: expected %s", ErrMsgInvalidScheme, database.SchemeSQLite)
	}

	rest := strings.TrimPrefix(dsn, database.SchemeSQLite)
	if rest == "" {
		return "", fmt.Errorf("%s: empty path", ErrMsgInvalidScheme)
	}
	if rest == memoryPath {
		return memoryPath, nil
	}

	path, query, hasQuery := strings.Cut(rest, "?")
	unescaped, err := url.PathUnescape(path)
	if err != nil {
		return "", fmt.Errorf("unescaping path: %w", err)
	}
	path = unescaped

	if !filepath.IsAbs(path) && !strings.HasPrefix(path, "./") {
		path = "./" + path
	}
	if hasQuery {
		return path + "?" + query, nil
	}
	return path, nil
}
