package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
	"github.com/osse101/ArcCompanion_Go/internal/repository"
)

var _ repository.WantListRepository = (*WantListRepository)(nil)

// WantListRepository stores want-list entries in PostgreSQL.
type WantListRepository struct {
	db *pgxpool.Pool
}

func NewWantListRepository(db *pgxpool.Pool) *WantListRepository {
	return &WantListRepository{db: db}
}

// ListEntries returns every entry ordered by creation time
func (r *WantListRepository) ListEntries(ctx context.Context) ([]domain.WantListEntry, error) {
	rows, err := r.db.Query(ctx, queryListEntries)
	if err != nil {
		return nil, dbError(err)
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
		return nil, dbError(err)
	}
	return entries, nil
}

// UpsertEntry inserts the entry or updates the existing entry for the same item
func (r *WantListRepository) UpsertEntry(ctx context.Context, entry domain.WantListEntry) (*domain.WantListEntry, error) {
	id, err := parseEntryUUID(entry.ID)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, queryUpsertEntry, id, entry.ItemID, entry.Qty, entry.Reason, entry.CreatedAt)
	stored, err := scanEntry(row)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// DeleteEntry removes an entry by id
func (r *WantListRepository) DeleteEntry(ctx context.Context, id string) error {
	entryID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf(errFmtEntryID, domain.ErrWantListEntryNotFound, id)
	}

	tag, err := r.db.Exec(ctx, queryDeleteEntry, entryID)
	if err != nil {
		return dbError(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf(errFmtEntryID, domain.ErrWantListEntryNotFound, id)
	}
	return nil
}

func scanEntry(row pgx.Row) (domain.WantListEntry, error) {
	var (
		id        uuid.UUID
		entry     domain.WantListEntry
		createdAt time.Time
	)
	if err := row.Scan(&id, &entry.ItemID, &entry.Qty, &entry.Reason, &createdAt); err != nil {
		return domain.WantListEntry{}, dbError(err)
	}
	entry.ID = id.String()
	entry.CreatedAt = createdAt.UTC()
	return entry, nil
}
