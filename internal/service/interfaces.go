package service

import (
	"context"

	"github.com/antonkuklin/saas-backend/models"
)

// AuthService implements account registration and credential verification.
type AuthService interface {
	// SignUp validates the payload, hashes the password, persists the
	// account, and issues a JWT for the new user.
	SignUp(ctx context.Context, payload models.SignupPayload) (models.User, models.Token, error)

	// Login validates the payload, verifies the password against the stored
	// bcrypt digest, and issues a JWT for the authenticated user.
	Login(ctx context.Context, payload models.LoginPayload) (models.User, models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// BlogService implements blog post creation and listing.
type BlogService interface {
	// CreatePost validates the payload, applies defaults (published=true,
	// empty tag list), and persists the post.
	CreatePost(ctx context.Context, payload models.BlogCreatePayload) (models.BlogPost, error)

	// ListPosts returns up to limit published posts, newest first.
	// A non-positive limit falls back to the default of 10.
	ListPosts(ctx context.Context, limit int) ([]models.BlogPost, error)
}

// ContactService implements contact form submission.
type ContactService interface {
	// SubmitMessage validates the payload and persists the message.
	SubmitMessage(ctx context.Context, payload models.ContactPayload) (models.ContactMessage, error)
}

// PlanService serves the static pricing plan fixtures.
type PlanService interface {
	// ListPlans returns the fixed ordered list of pricing plans.
	ListPlans() []models.Plan
}

// DiagnosticService reports database connectivity for operational
// smoke-testing.
type DiagnosticService interface {
	// Report inspects the database handle, attempts to list collections,
	// and returns the populated diagnostic body.
	Report(ctx context.Context) models.DiagnosticReport
}
