package postgres

// Queries
const (
	queryListEntries = `
SELECT entry_id, item_id, qty, reason, created_at
FROM wantlist_entries
ORDER BY created_at, entry_id`

	queryUpsertEntry = `
INSERT INTO wantlist_entries (entry_id, item_id, qty, reason, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
ON CONFLICT (item_id) DO UPDATE
SET qty = EXCLUDED.qty, reason = EXCLUDED.reason, updated_at = EXCLUDED.updated_at
RETURNING entry_id, item_id, qty, reason, created_at`

	queryDeleteEntry = `DELETE FROM wantlist_entries WHERE entry_id = $1`
)

// Error formats
const (
	errFmtWrapped   = "%w: %w"
	errFmtEntryID   = "%w: %s"
	errFmtInvalidID = "%w: invalid entry id: %w"
)
