package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
)

func newMemoryRepo(t *testing.T) *WantListRepository {
	t.Helper()
	repo, err := New(context.Background(), "sqlite://:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestParseDSN(t *testing.T) {
	tests := []struct {
		name    string
		dsn     string
		want    string
		wantErr bool
	}{
		{"memory", "sqlite://:memory:", ":memory:", false},
		{"absolute", "sqlite:///var/lib/arc/wants.db", "/var/lib/arc/wants.db", false},
		{"dot relative", "sqlite://./wants.db", "./wants.db", false},
		{"bare relative", "sqlite://data/wants.db", "./data/wants.db", false},
		{"escaped", "sqlite://my%20wants.db", "./my wants.db", false},
		{"query kept", "sqlite://wants.db?_pragma=busy_timeout(5000)", "./wants.db?_pragma=busy_timeout(5000)", false},
		{"wrong scheme", "postgres://localhost/db", "", true},
		{"empty path", "sqlite://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDSN(tt.dsn)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWantListRepository_UpsertKeepsIdentity(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := context.Background()
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	first, err := repo.UpsertEntry(ctx, domain.WantListEntry{
		ID: uuid.NewString(), ItemID: "item-widget", Qty: 2, Reason: "robot", CreatedAt: created,
	})
	require.NoError(t, err)

	second, err := repo.UpsertEntry(ctx, domain.WantListEntry{
		ID: uuid.NewString(), ItemID: "item-widget", Qty: 7, CreatedAt: created.Add(time.Hour),
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 7, second.Qty)
	assert.Empty(t, second.Reason)
	assert.True(t, second.CreatedAt.Equal(created))
}

func TestWantListRepository_ListOrdersByCreation(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"item-c", "item-a", "item-b"} {
		_, err := repo.UpsertEntry(ctx, domain.WantListEntry{
			ID: uuid.NewString(), ItemID: id, Qty: 1, CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	entries, err := repo.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "item-c", entries[0].ItemID)
	assert.Equal(t, "item-a", entries[1].ItemID)
	assert.Equal(t, "item-b", entries[2].ItemID)
}

func TestWantListRepository_Delete(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := context.Background()

	stored, err := repo.UpsertEntry(ctx, domain.WantListEntry{
		ID: uuid.NewString(), ItemID: "item-widget", Qty: 1, CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteEntry(ctx, stored.ID))
	assert.ErrorIs(t, repo.DeleteEntry(ctx, stored.ID), domain.ErrWantListEntryNotFound)

	entries, err := repo.ListEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWantListRepository_RejectsInvalidID(t *testing.T) {
	repo := newMemoryRepo(t)

	_, err := repo.UpsertEntry(context.Background(), domain.WantListEntry{ID: "nope", ItemID: "item-x", Qty: 1})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNew_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dsn := "sqlite://" + filepath.Join(t.TempDir(), "wants.db")

	repo, err := New(ctx, dsn)
	require.NoError(t, err)
	_, err = repo.UpsertEntry(ctx, domain.WantListEntry{
		ID: uuid.NewString(), ItemID: "item-widget", Qty: 3, CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	reopened, err := New(ctx, dsn)
	require.NoError(t, err)
	defer reopened.Close()

	entries, err := reopened.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 3, entries[0].Qty)
}
