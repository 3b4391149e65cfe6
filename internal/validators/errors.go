package validators

import "errors"

var (
	ErrEmptyName     = errors.New("name is required")
	ErrEmptyEmail    = errors.New("email is required")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrEmptyPassword = errors.New("password is required")

	ErrEmptyTitle   = errors.New("title is required")
	ErrEmptySlug    = errors.New("slug is required")
	ErrEmptyContent = errors.New("content is required")
	ErrEmptyAuthor  = errors.New("author is required")

	ErrEmptyMessage = errors.New("message is required")
)
