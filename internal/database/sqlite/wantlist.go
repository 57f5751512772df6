package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/osse101/ArcCompanion_Go/internal/database"
	"github.com/osse101/ArcCompanion_Go/internal/domain"
	"github.com/osse101/ArcCompanion_Go/internal/repository"
)

var _ repository.WantListRepository = (*WantListRepository)(nil)

// WantListRepository stores want-list entries in a local SQLite file.
type WantListRepository struct {
	db *sql.DB
}

// New opens the database named by dsn and applies pending migrations.
func New(ctx context.Context, dsn string) (*WantListRepository, error) {
	driverDSN, err := parseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseDSN, err)
	}

	db, err := sql.Open(driverName, driverDSN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpen, err)
	}
	// every connection to :memory: is a separate database
	if driverDSN == memoryPath {
		db.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgPing, err)
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(pingCtx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s %q: %w", ErrMsgPragma, pragma, err)
		}
	}

	if err := database.MigrateSQLite(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgMigrate, err)
	}

	return &WantListRepository{db: db}, nil
}

func (r *WantListRepository) Close() error {
	return r.db.Close()
}

// Ping checks the database is reachable.
func (r *WantListRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *WantListRepository) ListEntries(ctx context.Context) ([]domain.WantListEntry, error) {
	rows, err := r.db.QueryContext(ctx, queryListEntries)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDatabaseError, err)
	}
	defer rows.Close()

	entries := make([]domain.WantListEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDatabaseError, err)
	}
	return entries, nil
}

func (r *WantListRepository) UpsertEntry(ctx context.Context, entry domain.WantListEntry) (*domain.WantListEntry, error) {
	if _, err := uuid.Parse(entry.ID); err != nil {
		return nil, fmt.Errorf("%w: invalid entry id: %w", domain.ErrInvalidInput, err)
	}

	stamp := entry.CreatedAt.UTC().Format(timeLayout)
	row := r.db.QueryRowContext(ctx, queryUpsertEntry,
		entry.ID, entry.ItemID, entry.Qty, entry.Reason, stamp, stamp)

	stored, err := scanEntry(row)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *WantListRepository) DeleteEntry(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, queryDeleteEntry, id)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDatabaseError, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDatabaseError, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrWantListEntryNotFound, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (domain.WantListEntry, error) {
	var (
		entry   domain.WantListEntry
		created string
	)
	if err := row.Scan(&entry.ID, &entry.ItemID, &entry.Qty, &entry.Reason, &created); err != nil {
		return domain.WantListEntry{}, fmt.Errorf("%w: %w", domain.ErrDatabaseError, err)
	}
	t, err := time.Parse(timeLayout, created)
	if err != nil {
		return domain.WantListEntry{}, fmt.Errorf("%w: created_at %q: %w", domain.ErrDatabaseError, created, err)
	}
	entry.CreatedAt = t
	return entry, nil
}
