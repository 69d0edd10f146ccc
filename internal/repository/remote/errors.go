package remote

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"notevault-be/internal/apperror"
)

// pgUndefinedTable is the SQLSTATE the backend raises before its schema has
// been provisioned.
const pgUndefinedTable = "42P01"

// translate maps a raw backend error onto the shared taxonomy: row absent
// becomes NotFound, a missing table becomes SetupRequired, everything else
// is Generic with the backend's message preserved.
func translate(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(entity)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable {
		return apperror.SetupRequired(err)
	}
	if strings.Contains(err.Error(), "does not exist") {
		return apperror.SetupRequired(err)
	}

	return apperror.Generic(err)
}
