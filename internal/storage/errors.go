package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/avdoshkin/helpnet/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes for constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// MapError inspects low-level driver errors and maps constraint violations
// to the shared sentinel errors, preserving the driver detail in the
// wrapped message. Postgres errors are matched by SQLSTATE; for SQLite the
// mapping falls back to conservative string matching, since the driver
// does not export typed constraint errors.
//
// Anything that is not a recognized constraint violation is wrapped as a
// generic db error.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", common.ErrDuplicateIdentity, pgErr.Detail)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", common.ErrDanglingReference, pgErr.Detail)
		}
		return fmt.Errorf("db error: %w", err)
	}

	le := strings.ToLower(err.Error())
	switch {
	case strings.Contains(le, "unique constraint") || strings.Contains(le, "unique index"):
		return fmt.Errorf("%w: %v", common.ErrDuplicateIdentity, err)
	case strings.Contains(le, "foreign key constraint"):
		return fmt.Errorf("%w: %v", common.ErrDanglingReference, err)
	}

	return fmt.Errorf("db error: %w", err)
}
