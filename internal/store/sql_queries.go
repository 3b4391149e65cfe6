package store

import (
	sq "github.com/Masterminds/squirrel"
)

// Insert statements are written without a RETURNING clause so they stay valid
// on both dialects; [DB.insertWithID] appends it for PostgreSQL and falls
// back to LastInsertId on SQLite.
const (
	createUser = `INSERT INTO users (name, email, password_hash, created_at)
    VALUES ($1, $2, $3, $4)`

	findUserByEmail = `SELECT id, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	createBlogPost = `INSERT INTO blog_posts (title, slug, content, excerpt, author, tags, published, created_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	createContactMessage = `INSERT INTO contact_messages (name, email, message, created_at)
    VALUES ($1, $2, $3, $4)`
)

// buildListPublishedQuery builds the published-posts listing query.
// squirrel is used here because the limit is caller-supplied; everything else
// in this package is static enough for plain constants.
func buildListPublishedQuery(limit int) (string, []any, error) {
	return sq.Select("id", "title", "slug", "content", "excerpt", "author", "tags", "published", "created_at").
		From("blog_posts").
		Where(sq.Eq{"published": true}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
