package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/antonkuklin/saas-backend/internal/config"
	"github.com/antonkuklin/saas-backend/internal/logger"
	"github.com/antonkuklin/saas-backend/migrations"
)

// Dialect identifies the SQL backend behind a DB handle. The two dialects
// differ in how inserted IDs are retrieved, how constraint errors are
// reported, and where the table catalog lives.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// DB is the shared database handle used by every repository. It wraps
// *sql.DB with the selected dialect and a classifier that maps driver-level
// errors to the package's sentinel errors.
type DB struct {
	*sql.DB
	dialect    Dialect
	classifier errorClassifier
	logger     *logger.Logger
}

// Migrate applies all embedded goose migrations for the handle's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// Name returns the short backend name for diagnostic reporting.
func (db *DB) Name() string {
	return string(db.dialect)
}

const (
	listTablesPostgres = `SELECT table_name FROM information_schema.tables
		WHERE table_schema = 'public' ORDER BY table_name LIMIT $1;`
	listTablesSQLite = `SELECT name FROM sqlite_master
		WHERE type = 'table' ORDER BY name LIMIT $1;`
)

// ListCollections returns up to limit table names from the backend's catalog.
// Used by the diagnostic endpoint to prove the connection is usable for real
// queries, not just for pings.
func (db *DB) ListCollections(ctx context.Context, limit int) ([]string, error) {
	log := logger.FromContext(ctx)

	query := listTablesPostgres
	if db.dialect == DialectSQLite {
		query = listTablesSQLite
	}

	rows, err := db.QueryContext(ctx, query, limit)
	if err != nil {
		log.Err(err).Str("func", "*DB.ListCollections").Msg("error listing tables")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	names := make([]string, 0, limit)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			log.Err(err).Str("func", "*DB.ListCollections").Msg("error scanning table name")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return names, nil
}

// NewConnect opens a database handle for the DSN in cfg, selecting the
// backend by scheme: postgres:// and postgresql:// URLs connect to
// PostgreSQL, anything else is treated as a SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}
