package validators

import (
	"testing"

	"github.com/antonkuklin/saas-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name    string
		payload models.SignupPayload
		wantErr error
	}{
		{
			name:    "valid",
			payload: models.SignupPayload{Name: "Alice", Email: "alice@example.com", Password: "hunter2"},
		},
		{
			name:    "empty name",
			payload: models.SignupPayload{Email: "alice@example.com", Password: "hunter2"},
			wantErr: ErrEmptyName,
		},
		{
			name:    "whitespace name",
			payload: models.SignupPayload{Name: "   ", Email: "alice@example.com", Password: "hunter2"},
			wantErr: ErrEmptyName,
		},
		{
			name:    "empty email",
			payload: models.SignupPayload{Name: "Alice", Password: "hunter2"},
			wantErr: ErrEmptyEmail,
		},
		{
			name:    "empty password",
			payload: models.SignupPayload{Name: "Alice", Email: "alice@example.com"},
			wantErr: ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSignup(tt.payload)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	assert.NoError(t, ValidateLogin(models.LoginPayload{Email: "a@b.co", Password: "p"}))
	assert.ErrorIs(t, ValidateLogin(models.LoginPayload{Password: "p"}), ErrEmptyEmail)
	assert.ErrorIs(t, ValidateLogin(models.LoginPayload{Email: "a@b.co"}), ErrEmptyPassword)
}

func TestValidateBlogCreate(t *testing.T) {
	valid := models.BlogCreatePayload{Title: "T", Slug: "t", Content: "c", Author: "A"}
	assert.NoError(t, ValidateBlogCreate(valid))

	// excerpt and tags are optional
	noExtras := valid
	noExtras.Excerpt = ""
	noExtras.Tags = nil
	assert.NoError(t, ValidateBlogCreate(noExtras))

	tests := []struct {
		name    string
		mutate  func(p *models.BlogCreatePayload)
		wantErr error
	}{
		{"empty title", func(p *models.BlogCreatePayload) { p.Title = "" }, ErrEmptyTitle},
		{"empty slug", func(p *models.BlogCreatePayload) { p.Slug = " " }, ErrEmptySlug},
		{"empty content", func(p *models.BlogCreatePayload) { p.Content = "" }, ErrEmptyContent},
		{"empty author", func(p *models.BlogCreatePayload) { p.Author = "" }, ErrEmptyAuthor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := valid
			tt.mutate(&payload)
			assert.ErrorIs(t, ValidateBlogCreate(payload), tt.wantErr)
		})
	}
}

func TestValidateContact(t *testing.T) {
	valid := models.ContactPayload{Name: "Alice", Email: "alice@example.com", Message: "Hi"}
	assert.NoError(t, ValidateContact(valid))

	assert.ErrorIs(t, ValidateContact(models.ContactPayload{Email: "a@b.co", Message: "m"}), ErrEmptyName)
	assert.ErrorIs(t, ValidateContact(models.ContactPayload{Name: "A", Message: "m"}), ErrEmptyEmail)
	assert.ErrorIs(t, ValidateContact(models.ContactPayload{Name: "A", Email: "a@b.co"}), ErrEmptyMessage)
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email   string
		wantErr error
	}{
		{"alice@example.com", nil},
		{"  alice@example.com  ", nil},
		{"", ErrEmptyEmail},
		{"   ", ErrEmptyEmail},
		{"no-at-sign", ErrInvalidEmail},
		{"@example.com", ErrInvalidEmail},
		{"alice@", ErrInvalidEmail},
		{"alice@nodot", ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := validateEmail(tt.email)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
