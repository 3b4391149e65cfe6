package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// errorClassifier maps driver-level errors to this package's sentinel
// errors so that repositories stay dialect-agnostic. Each SQL backend
// provides its own implementation.
type errorClassifier interface {
	// IsUniqueViolation reports whether err was caused by a unique
	// constraint (e.g. a duplicate user email).
	IsUniqueViolation(err error) bool
}

// postgresErrorClassifier implements [errorClassifier] for PostgreSQL by
// inspecting the pgconn error code returned by the pgx driver.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
type postgresErrorClassifier struct{}

func (postgresErrorClassifier) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	return false
}

// sqliteErrorClassifier implements [errorClassifier] for SQLite using the
// extended result codes exposed by mattn/go-sqlite3.
type sqliteErrorClassifier struct{}

func (sqliteErrorClassifier) IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
