package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/antonkuklin/saas-backend/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser stores a new user and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user whose email matches exactly.
	// Returns ErrNoUserWasFound when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// BlogPostRepository persists and lists blog posts.
type BlogPostRepository interface {
	// CreatePost stores a new post and returns it with server-assigned
	// fields populated.
	CreatePost(ctx context.Context, post models.BlogPost) (models.BlogPost, error)

	// ListPublished returns up to limit published posts, newest first.
	ListPublished(ctx context.Context, limit int) ([]models.BlogPost, error)
}

// ContactMessageRepository persists contact form submissions.
// Messages are write-only; no read path exists.
type ContactMessageRepository interface {
	// CreateMessage stores a new contact message and returns it with
	// server-assigned fields populated.
	CreateMessage(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error)
}

// CollectionLister exposes the table catalog of the underlying backend.
// Implemented by *DB; consumed by the diagnostic service, which proves
// connectivity by listing tables rather than by a bare ping.
type CollectionLister interface {
	ListCollections(ctx context.Context, limit int) ([]string, error)
}
