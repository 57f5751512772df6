package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgItemNotFound          = "item not found"
	ErrMsgQuestChainNotFound    = "quest chain not found"
	ErrMsgWantListEntryNotFound = "want-list entry not found"
	ErrMsgInvalidQuantity       = "quantity must be positive"
	ErrMsgInvalidInput          = "invalid input"
	ErrMsgDatasetNotLoaded      = "dataset not loaded"
	ErrMsgUnknownPass           = "unknown pipeline pass"
	ErrMsgUnsupportedDSN        = "unsupported want-list DSN"
	ErrMsgDatabaseError         = "database error"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound          = errors.New(ErrMsgItemNotFound)
	ErrQuestChainNotFound    = errors.New(ErrMsgQuestChainNotFound)
	ErrWantListEntryNotFound = errors.New(ErrMsgWantListEntryNotFound)
	ErrInvalidQuantity       = errors.New(ErrMsgInvalidQuantity)
	ErrInvalidInput          = errors.New(ErrMsgInvalidInput)
	ErrDatasetNotLoaded      = errors.New(ErrMsgDatasetNotLoaded)
	ErrUnknownPass           = errors.New(ErrMsgUnknownPass)
	ErrUnsupportedDSN        = errors.New(ErrMsgUnsupportedDSN)
	ErrDatabaseError         = errors.New(ErrMsgDatabaseError)
)
