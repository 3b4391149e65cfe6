package store

import (
	"context"
	"fmt"
	"time"

	"github.com/antonkuklin/saas-backend/internal/logger"
	"github.com/antonkuklin/saas-backend/models"
)

// contactMessageRepository is the SQL-backed implementation of
// [ContactMessageRepository]. Messages are insert-only.
type contactMessageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContactMessageRepository constructs a [ContactMessageRepository] backed
// by the provided database connection and logger.
func NewContactMessageRepository(db *DB, logger *logger.Logger) ContactMessageRepository {
	logger.Debug().Msg("creating contact message repository")
	return &contactMessageRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMessage persists a new contact message and returns it with server
// assigned fields (ID, CreatedAt).
func (r *contactMessageRepository) CreateMessage(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error) {
	log := logger.FromContext(ctx)

	msg.CreatedAt = time.Now().UTC()

	id, err := r.db.insertWithID(ctx, createContactMessage, msg.Name, msg.Email, msg.Message, msg.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*contactMessageRepository.CreateMessage").Msg("error inserting contact message")
		return models.ContactMessage{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	msg.ID = id
	return msg, nil
}
