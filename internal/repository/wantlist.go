package repository

import (
	"context"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
)

// WantListRepository persists want-list entries. Entries are unique per item.
type WantListRepository interface {
	// ListEntries returns every entry ordered by creation time, then id.
	ListEntries(ctx context.Context) ([]domain.WantListEntry, error)

	// UpsertEntry inserts entry, or updates qty and reason of the existing
	// entry for the same item. It returns the stored entry, which keeps the
	// original id and creation time on update.
	UpsertEntry(ctx context.Context, entry domain.WantListEntry) (*domain.WantListEntry, error)

	// DeleteEntry removes an entry by id, returning domain.ErrWantListEntryNotFound
	// when no entry matched.
	DeleteEntry(ctx context.Context, id string) error
}
