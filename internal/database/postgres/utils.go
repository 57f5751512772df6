package postgres

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
)

// dbError tags a driver error as a database failure
func dbError(err error) error {
	return fmt.Errorf(errFmtWrapped, domain.ErrDatabaseError, err)
}

// parseEntryUUID parses an entry id with a consistent error message
func parseEntryUUID(id string) (uuid.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf(errFmtInvalidID, domain.ErrInvalidInput, err)
	}
	return u, nil
}
