package store

import (
	"context"
	"fmt"
)

// insertWithID executes an INSERT and returns the storage-assigned row ID.
//
// PostgreSQL has no usable LastInsertId, so the statement gets a RETURNING
// clause appended and runs as a query; SQLite goes through ExecContext and
// the driver's LastInsertId.
func (db *DB) insertWithID(ctx context.Context, query string, args ...any) (int64, error) {
	if db.dialect == DialectPostgres {
		var id int64
		if err := db.QueryRowContext(ctx, query+" RETURNING id;", args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	res, err := db.ExecContext(ctx, query+";", args...)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}
