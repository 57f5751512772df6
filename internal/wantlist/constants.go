package wantlist

import "time"

// Cache defaults
const (
	DefaultCacheSize = 512
	DefaultCacheTTL  = 10 * time.Minute
)

// cacheKeySeparator joins the parts of an expansion cache key
const cacheKeySeparator = "|"

// Log messages
const (
	LogMsgEntryAdded      = "Want-list entry saved"
	LogMsgEntryRemoved    = "Want-list entry removed"
	LogMsgItemsReplaced   = "Want-list item snapshot replaced"
	LogMsgExpansionCached = "Want-list expansion served from cache"
)

// Error formats
const (
	ErrFmtUnknownItem    = "%w: %q"
	ErrFmtUnknownItemDYM = "%w: %q (did you mean %s?)"
	ErrFmtQuantity       = "%w: got %d"
	ErrFmtRepository     = "%s: %w"
)

// Error contexts
const (
	ErrContextList   = "failed to list want-list entries"
	ErrContextSave   = "failed to save want-list entry"
	ErrContextRemove = "failed to remove want-list entry"
)
