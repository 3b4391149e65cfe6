package store

import (
	"context"
	"fmt"

	"github.com/antonkuklin/saas-backend/internal/config"
	"github.com/antonkuklin/saas-backend/internal/logger"
)

// Storages bundles the database handle and every repository built on it.
// A single Storages value is created at startup and shared by all requests.
type Storages struct {
	DB *DB

	UserRepository           UserRepository
	BlogPostRepository       BlogPostRepository
	ContactMessageRepository ContactMessageRepository
}

// NewStorages connects to the configured backend, applies migrations, and
// wires up all repositories.
//
// An empty DSN is not an error: the returned Storages has a nil DB and nil
// repositories, the server keeps running, and the diagnostic endpoint reports
// the database as not connected.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Warn().Msg("no DATABASE_URL configured, starting without a store")
		return &Storages{}, nil
	}

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	log.Info().Str("backend", db.Name()).Msg("storages ready")

	return &Storages{
		DB:                       db,
		UserRepository:           NewUserRepository(db, log),
		BlogPostRepository:       NewBlogPostRepository(db, log),
		ContactMessageRepository: NewContactMessageRepository(db, log),
	}, nil
}

// Available reports whether a database connection was established.
func (s *Storages) Available() bool {
	return s != nil && s.DB != nil
}

// Close releases the underlying database connection, if any.
func (s *Storages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
