// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Kuklin

package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/antonkuklin/saas-backend/internal/logger"
	"github.com/antonkuklin/saas-backend/internal/service"
	"github.com/antonkuklin/saas-backend/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signUpFn     func(ctx context.Context, payload models.SignupPayload) (models.User, models.Token, error)
	loginFn      func(ctx context.Context, payload models.LoginPayload) (models.User, models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) SignUp(ctx context.Context, payload models.SignupPayload) (models.User, models.Token, error) {
	return m.signUpFn(ctx, payload)
}

func (m *mockAuthService) Login(ctx context.Context, payload models.LoginPayload) (models.User, models.Token, error) {
	return m.loginFn(ctx, payload)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockBlogService implements service.BlogService for unit tests.
type mockBlogService struct {
	createPostFn func(ctx context.Context, payload models.BlogCreatePayload) (models.BlogPost, error)
	listPostsFn  func(ctx context.Context, limit int) ([]models.BlogPost, error)
}

func (m *mockBlogService) CreatePost(ctx context.Context, payload models.BlogCreatePayload) (models.BlogPost, error) {
	return m.createPostFn(ctx, payload)
}

func (m *mockBlogService) ListPosts(ctx context.Context, limit int) ([]models.BlogPost, error) {
	return m.listPostsFn(ctx, limit)
}

// mockContactService implements service.ContactService for unit tests.
type mockContactService struct {
	submitMessageFn func(ctx context.Context, payload models.ContactPayload) (models.ContactMessage, error)
}

func (m *mockContactService) SubmitMessage(ctx context.Context, payload models.ContactPayload) (models.ContactMessage, error) {
	return m.submitMessageFn(ctx, payload)
}

// mockPlanService implements service.PlanService for unit tests.
type mockPlanService struct {
	plans []models.Plan
}

func (m *mockPlanService) ListPlans() []models.Plan {
	return m.plans
}

// mockDiagnosticService implements service.DiagnosticService for unit tests.
type mockDiagnosticService struct {
	reportFn func(ctx context.Context) models.DiagnosticReport
}

func (m *mockDiagnosticService) Report(ctx context.Context) models.DiagnosticReport {
	if m.reportFn != nil {
		return m.reportFn(ctx)
	}
	return models.DiagnosticReport{}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given service set, filling any nil
// service with an empty mock.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()

	if svcs == nil {
		svcs = &service.Services{}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	if svcs.BlogService == nil {
		svcs.BlogService = &mockBlogService{}
	}
	if svcs.ContactService == nil {
		svcs.ContactService = &mockContactService{}
	}
	if svcs.PlanService == nil {
		svcs.PlanService = &mockPlanService{}
	}
	if svcs.DiagnosticService == nil {
		svcs.DiagnosticService = &mockDiagnosticService{}
	}

	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}
