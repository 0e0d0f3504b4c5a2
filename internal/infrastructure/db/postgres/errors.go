package postgres

import (
	"errors"

	pgconnv1 "github.com/jackc/pgconn"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// IsPgUniqueViolation reports whether err is a unique-constraint violation.
// Checks both driver generations; code that predates the pgx v5 migration can
// still surface the old pgconn error type.
func IsPgUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	var pgErrV1 *pgconnv1.PgError
	if errors.As(err, &pgErrV1) {
		return pgErrV1.Code == uniqueViolationCode
	}
	return false
}
