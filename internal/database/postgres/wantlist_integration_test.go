package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/ArcCompanion_Go/internal/database"
	"github.com/osse101/ArcCompanion_Go/internal/domain"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()
	var terminate func()
	if !testing.Short() {
		terminate = setupContainer(context.Background())
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupContainer(ctx context.Context) func() {
	// Handle potential panics from testcontainers
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return func() {}
	}

	pool, err := database.NewPool(connStr, 5, time.Minute, 5*time.Minute)
	if err != nil {
		fmt.Printf("WARNING: Failed to connect: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return func() {}
	}
	if err := database.MigratePostgres(ctx, pool); err != nil {
		fmt.Printf("WARNING: Failed to migrate: %v\n", err)
		pool.Close()
		_ = pgContainer.Terminate(ctx)
		return func() {}
	}
	testPool = pool

	return func() {
		pool.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

func requirePool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
	_, err := testPool.Exec(context.Background(), "TRUNCATE wantlist_entries")
	require.NoError(t, err)
	return testPool
}

func TestWantListRepository_Lifecycle(t *testing.T) {
	repo := NewWantListRepository(requirePool(t))
	ctx := context.Background()
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	first, err := repo.UpsertEntry(ctx, domain.WantListEntry{
		ID: uuid.NewString(), ItemID: "item-widget", Qty: 2, Reason: "robot", CreatedAt: created,
	})
	require.NoError(t, err)
	assert.Equal(t, "item-widget", first.ItemID)
	assert.True(t, first.CreatedAt.Equal(created))

	_, err = repo.UpsertEntry(ctx, domain.WantListEntry{
		ID: uuid.NewString(), ItemID: "item-screw", Qty: 10, CreatedAt: created.Add(time.Minute),
	})
	require.NoError(t, err)

	updated, err := repo.UpsertEntry(ctx, domain.WantListEntry{
		ID: uuid.NewString(), ItemID: "item-widget", Qty: 5, Reason: "two robots", CreatedAt: created.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID, "upsert keeps the original id")
	assert.Equal(t, 5, updated.Qty)
	assert.True(t, updated.CreatedAt.Equal(created), "upsert keeps the original creation time")

	entries, err := repo.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "item-widget", entries[0].ItemID)
	assert.Equal(t, "item-screw", entries[1].ItemID)

	require.NoError(t, repo.DeleteEntry(ctx, first.ID))
	assert.ErrorIs(t, repo.DeleteEntry(ctx, first.ID), domain.ErrWantListEntryNotFound)
	assert.ErrorIs(t, repo.DeleteEntry(ctx, "not-a-uuid"), domain.ErrWantListEntryNotFound)

	entries, err = repo.ListEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWantListRepository_RejectsInvalidID(t *testing.T) {
	repo := NewWantListRepository(requirePool(t))

	_, err := repo.UpsertEntry(context.Background(), domain.WantListEntry{ID: "nope", ItemID: "item-x", Qty: 1})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
