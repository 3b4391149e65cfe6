package service

import (
	"context"
	"fmt"

	"github.com/antonkuklin/saas-backend/internal/logger"
	"github.com/antonkuklin/saas-backend/internal/store"
	"github.com/antonkuklin/saas-backend/internal/validators"
	"github.com/antonkuklin/saas-backend/models"
)

// DefaultListLimit is the number of posts returned when the caller does not
// supply a usable limit.
const DefaultListLimit = 10

// blogService is the concrete implementation of BlogService.
type blogService struct {
	blogPostRepository store.BlogPostRepository
	logger             *logger.Logger
}

// NewBlogService constructs a BlogService wired to the given repository.
func NewBlogService(blogPostRepository store.BlogPostRepository, logger *logger.Logger) BlogService {
	return &blogService{
		blogPostRepository: blogPostRepository,
		logger:             logger,
	}
}

// CreatePost validates and persists a new blog post.
//
// Defaults applied before persistence: published=true when the field is
// absent, empty tag list when tags are absent. Slug uniqueness is not
// enforced.
func (b *blogService) CreatePost(ctx context.Context, payload models.BlogCreatePayload) (models.BlogPost, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateBlogCreate(payload); err != nil {
		log.Error().Err(err).Str("slug", payload.Slug).Msg("invalid blog payload")
		return models.BlogPost{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if b.blogPostRepository == nil {
		return models.BlogPost{}, ErrStorageUnavailable
	}

	createdPost, err := b.blogPostRepository.CreatePost(ctx, payload.Post())
	if err != nil {
		log.Err(err).Str("slug", payload.Slug).Msg("blog post creation ended with error")
		return models.BlogPost{}, fmt.Errorf("blog post creation ended with error: %w", err)
	}

	return createdPost, nil
}

// ListPosts returns up to limit published posts, newest first. A non-positive
// limit falls back to DefaultListLimit.
func (b *blogService) ListPosts(ctx context.Context, limit int) ([]models.BlogPost, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		limit = DefaultListLimit
	}

	if b.blogPostRepository == nil {
		return nil, ErrStorageUnavailable
	}

	posts, err := b.blogPostRepository.ListPublished(ctx, limit)
	if err != nil {
		log.Err(err).Int("limit", limit).Msg("blog post listing ended with error")
		return nil, fmt.Errorf("blog post listing ended with error: %w", err)
	}

	return posts, nil
}
