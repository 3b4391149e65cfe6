package service

import (
	"context"
	"fmt"

	"github.com/antonkuklin/saas-backend/internal/logger"
	"github.com/antonkuklin/saas-backend/internal/store"
	"github.com/antonkuklin/saas-backend/internal/validators"
	"github.com/antonkuklin/saas-backend/models"
)

// contactService is the concrete implementation of ContactService.
type contactService struct {
	contactMessageRepository store.ContactMessageRepository
	logger                   *logger.Logger
}

// NewContactService constructs a ContactService wired to the given repository.
func NewContactService(contactMessageRepository store.ContactMessageRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contactMessageRepository: contactMessageRepository,
		logger:                   logger,
	}
}

// SubmitMessage validates and persists a contact form submission.
// Validation failures are reported before any persistence call is made.
func (c *contactService) SubmitMessage(ctx context.Context, payload models.ContactPayload) (models.ContactMessage, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateContact(payload); err != nil {
		log.Error().Err(err).Str("email", payload.Email).Msg("invalid contact payload")
		return models.ContactMessage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if c.contactMessageRepository == nil {
		return models.ContactMessage{}, ErrStorageUnavailable
	}

	createdMessage, err := c.contactMessageRepository.CreateMessage(ctx, payload.ContactMessage())
	if err != nil {
		log.Err(err).Str("email", payload.Email).Msg("contact message creation ended with error")
		return models.ContactMessage{}, fmt.Errorf("contact message creation ended with error: %w", err)
	}

	return createdMessage, nil
}
