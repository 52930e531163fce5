package postgres

import (
	"strings"

	domainerrors "tesotunes/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// PostgreSQL error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
	pgCodeNotNullViolation    = "23502"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgCodeUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgCodeForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgCodeNotNullViolation
}

// uniqueViolationError maps a unique-constraint violation to the domain
// conflict error for the column that collided. Uniqueness pre-checks in
// the use cases are advisory only; the constraint reported here is the
// final authority under concurrent registration.
func uniqueViolationError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return domainerrors.ErrConflict
	}

	constraint := strings.ToLower(pgErr.ConstraintName)
	switch {
	case strings.Contains(constraint, "email"):
		return domainerrors.ErrEmailTaken
	case strings.Contains(constraint, "phone"):
		return domainerrors.ErrPhoneTaken
	case strings.Contains(constraint, "stage_name"):
		return domainerrors.ErrStageNameTaken
	case strings.Contains(constraint, "national_id"):
		return domainerrors.ErrNationalIDTaken
	case strings.Contains(constraint, "year"):
		return domainerrors.ErrDividendYearExists
	default:
		// username and other collisions have no client-facing field to
		// point at; surface a generic conflict.
		return domainerrors.ErrConflict
	}
}
