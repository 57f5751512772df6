package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/ArcCompanion_Go/internal/logger"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationFS embed.FS

// MigratePostgres applies the embedded PostgreSQL migrations through pool.
func MigratePostgres(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	return migrate(ctx, db, goose.DialectPostgres, migrationsDirPostgres)
}

// MigrateSQLite applies the embedded SQLite migrations to db.
func MigrateSQLite(ctx context.Context, db *sql.DB) error {
	return migrate(ctx, db, goose.DialectSQLite3, migrationsDirSQLite)
}

func migrate(ctx context.Context, db *sql.DB, dialect goose.Dialect, dir string) error {
	log := logger.FromContext(ctx)

	fsys, err := fs.Sub(migrationFS, dir)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLoadMigrations, err)
	}
	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLoadMigrations, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToApplyMigrations, err)
	}
	if len(results) == 0 {
		log.Debug(LogMsgMigrationsUpToDate, "dialect", string(dialect))
	}
	for _, r := range results {
		log.Info(LogMsgMigrationApplied, "dialect", string(dialect), "version", r.Source.Version, "duration", r.Duration)
	}
	return nil
}
