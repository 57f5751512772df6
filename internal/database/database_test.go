package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestDSNSchemes(t *testing.T) {
	tests := []struct {
		dsn      string
		postgres bool
		sqlite   bool
	}{
		{"postgres://user:pw@localhost:5432/arc", true, false},
		{"postgresql://localhost/arc", true, false},
		{"sqlite://wants.db", false, true},
		{"sqlite://:memory:", false, true},
		{"mysql://localhost/arc", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.postgres, IsPostgresDSN(tt.dsn))
			assert.Equal(t, tt.sqlite, IsSQLiteDSN(tt.dsn))
		})
	}
}

func TestMigrateSQLite(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, MigrateSQLite(ctx, db))
	require.NoError(t, MigrateSQLite(ctx, db))

	_, err = db.ExecContext(ctx,
		`INSERT INTO wantlist_entries (entry_id, item_id, qty, reason, created_at, updated_at) VALUES ('a', 'item-x', 0, '', 't', 't')`)
	assert.Error(t, err, "qty must be positive")
}
