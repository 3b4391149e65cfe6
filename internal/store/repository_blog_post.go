package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/antonkuklin/saas-backend/internal/logger"
	"github.com/antonkuklin/saas-backend/models"
)

// blogPostRepository is the SQL-backed implementation of [BlogPostRepository].
//
// Tags are stored in a JSON column so the ordered list survives round-trips
// on both dialects without driver-specific array codecs.
type blogPostRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBlogPostRepository constructs a [BlogPostRepository] backed by the
// provided database connection and logger.
func NewBlogPostRepository(db *DB, logger *logger.Logger) BlogPostRepository {
	logger.Debug().Msg("creating blog post repository")
	return &blogPostRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost persists a new blog post and returns it with server-assigned
// fields (ID, CreatedAt). Slugs are deliberately not checked for uniqueness.
func (r *blogPostRepository) CreatePost(ctx context.Context, post models.BlogPost) (models.BlogPost, error) {
	log := logger.FromContext(ctx)

	tags, err := json.Marshal(post.Tags)
	if err != nil {
		log.Err(err).Str("func", "*blogPostRepository.CreatePost").Msg("error marshaling tags")
		return models.BlogPost{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	post.CreatedAt = time.Now().UTC()

	id, err := r.db.insertWithID(ctx, createBlogPost,
		post.Title, post.Slug, post.Content, post.Excerpt, post.Author, tags, post.Published, post.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*blogPostRepository.CreatePost").Msg("error inserting blog post")
		return models.BlogPost{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	post.ID = id
	return post, nil
}

// ListPublished returns up to limit published posts, newest first.
func (r *blogPostRepository) ListPublished(ctx context.Context, limit int) ([]models.BlogPost, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPublishedQuery(limit)
	if err != nil {
		log.Err(err).Str("func", "*blogPostRepository.ListPublished").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*blogPostRepository.ListPublished").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.BlogPost, 0, limit)
	for rows.Next() {
		var post models.BlogPost
		var tags []byte

		if err := rows.Scan(&post.ID, &post.Title, &post.Slug, &post.Content, &post.Excerpt,
			&post.Author, &tags, &post.Published, &post.CreatedAt); err != nil {
			log.Err(err).Str("func", "*blogPostRepository.ListPublished").Msg("error scanning blog post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if len(tags) > 0 {
			if err := json.Unmarshal(tags, &post.Tags); err != nil {
				log.Err(err).Str("func", "*blogPostRepository.ListPublished").Msg("error unmarshaling tags")
				return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
		}
		if post.Tags == nil {
			post.Tags = []string{}
		}

		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return posts, nil
}
