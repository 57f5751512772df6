package sqlite

import "time"

const (
	driverName  = "sqlite"
	pingTimeout = 30 * time.Second
	// fixed width so created_at sorts lexically
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

var pragmas = []string{
	"PRAGMA busy_timeout = 30000;",
	"PRAGMA journal_mode = WAL;",
	"PRAGMA foreign_keys = ON;",
}

// Error Messages
const (
	ErrMsgInvalidScheme = "invalid sqlite DSN scheme"
	ErrMsgParseDSN      = "parsing sqlite DSN"
	ErrMsgOpen          = "opening sqlite database"
	ErrMsgPing          = "pinging sqlite"
	ErrMsgPragma        = "setting pragma"
	ErrMsgMigrate       = "migrating sqlite"
)

const (
	queryListEntries = `
SELECT entry_id, item_id, qty, reason, created_at
FROM wantlist_entries
ORDER BY created_at, entry_id`

	queryUpsertEntry = `
INSERT INTO wantlist_entries (entry_id, item_id, qty, reason, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (item_id) DO UPDATE
SET qty = excluded.qty, reason = excluded.reason, updated_at = excluded.updated_at
RETURNING entry_id, item_id, qty, reason, created_at`

	queryDeleteEntry = `DELETE FROM wantlist_entries WHERE entry_id = ?`
)
