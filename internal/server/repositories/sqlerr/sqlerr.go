// Package sqlerr translates driver-specific constraint failures into the
// sentinel errors from package common.
package sqlerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/dmitrijs2005/animalcatalog/internal/common"
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation           = "23505"
	pgCheckViolation            = "23514"
	pgNotNullViolation          = "23502"
	pgInvalidTextRepresentation = "22P02"
)

// Classify wraps err with common.ErrorConflict for unique violations and
// common.ErrorInvalidInput for check, not-null and enum violations. Other
// errors are wrapped as "db error". Nil stays nil.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", common.ErrorConflict, pgErr.ConstraintName)
		case pgCheckViolation, pgNotNullViolation, pgInvalidTextRepresentation:
			return fmt.Errorf("%w: %s", common.ErrorInvalidInput, pgErr.Message)
		}
		return fmt.Errorf("db error: %w", err)
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %v", common.ErrorConflict, err)
		case sqlite3lib.SQLITE_CONSTRAINT_CHECK, sqlite3lib.SQLITE_CONSTRAINT_NOTNULL:
			return fmt.Errorf("%w: %v", common.ErrorInvalidInput, err)
		}
	}

	message := strings.ToLower(err.Error())
	switch {
	case strings.Contains(message, "unique constraint failed"):
		return fmt.Errorf("%w: %v", common.ErrorConflict, err)
	case strings.Contains(message, "check constraint failed"):
		return fmt.Errorf("%w: %v", common.ErrorInvalidInput, err)
	}

	return fmt.Errorf("db error: %w", err)
}
