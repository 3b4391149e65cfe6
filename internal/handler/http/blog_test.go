package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/antonkuklin/saas-backend/internal/service"
	"github.com/antonkuklin/saas-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validBlogPayload = models.BlogCreatePayload{
	Title:   "Hello",
	Slug:    "hello",
	Content: "body",
	Author:  "Alice",
	Tags:    []string{"go"},
}

// ─────────────────────────────────────────────
// createBlogPost
// ─────────────────────────────────────────────

func TestCreateBlogPost_Success(t *testing.T) {
	blog := &mockBlogService{
		createPostFn: func(_ context.Context, payload models.BlogCreatePayload) (models.BlogPost, error) {
			assert.Equal(t, validBlogPayload.Slug, payload.Slug)
			return models.BlogPost{ID: 7, Slug: payload.Slug}, nil
		},
	}

	h := newTestHandler(t, &service.Services{BlogService: blog})
	req := httptest.NewRequest(http.MethodPost, "/api/blog", strings.NewReader(jsonBody(t, validBlogPayload)))
	rec := httptest.NewRecorder()

	h.createBlogPost(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.CreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, "7", body.ID)
}

func TestCreateBlogPost_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/blog", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	h.createBlogPost(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

func TestCreateBlogPost_ValidationError(t *testing.T) {
	blog := &mockBlogService{
		createPostFn: func(_ context.Context, _ models.BlogCreatePayload) (models.BlogPost, error) {
			return models.BlogPost{}, fmt.Errorf("%w: slug is empty", service.ErrInvalidDataProvided)
		},
	}

	h := newTestHandler(t, &service.Services{BlogService: blog})
	req := httptest.NewRequest(http.MethodPost, "/api/blog", strings.NewReader(`{"title":"no slug"}`))
	rec := httptest.NewRecorder()

	h.createBlogPost(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "slug is empty")
}

// ─────────────────────────────────────────────
// listBlogPosts
// ─────────────────────────────────────────────

func TestListBlogPosts_Success(t *testing.T) {
	blog := &mockBlogService{
		listPostsFn: func(_ context.Context, limit int) ([]models.BlogPost, error) {
			assert.Equal(t, 0, limit, "absent limit should be passed as zero")
			return []models.BlogPost{{ID: 2, Slug: "second"}, {ID: 1, Slug: "first"}}, nil
		},
	}

	h := newTestHandler(t, &service.Services{BlogService: blog})
	req := httptest.NewRequest(http.MethodGet, "/api/blog", nil)
	rec := httptest.NewRecorder()

	h.listBlogPosts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var posts []models.BlogPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	require.Len(t, posts, 2)
	assert.Equal(t, "second", posts[0].Slug)
}

func TestListBlogPosts_LimitParam(t *testing.T) {
	blog := &mockBlogService{
		listPostsFn: func(_ context.Context, limit int) ([]models.BlogPost, error) {
			assert.Equal(t, 3, limit)
			return []models.BlogPost{}, nil
		},
	}

	h := newTestHandler(t, &service.Services{BlogService: blog})
	req := httptest.NewRequest(http.MethodGet, "/api/blog?limit=3", nil)
	rec := httptest.NewRecorder()

	h.listBlogPosts(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestListBlogPosts_BadLimitParam verifies that an unparseable limit falls
// back to the service default instead of failing the request.
func TestListBlogPosts_BadLimitParam(t *testing.T) {
	blog := &mockBlogService{
		listPostsFn: func(_ context.Context, limit int) ([]models.BlogPost, error) {
			assert.Equal(t, 0, limit)
			return []models.BlogPost{}, nil
		},
	}

	h := newTestHandler(t, &service.Services{BlogService: blog})
	req := httptest.NewRequest(http.MethodGet, "/api/blog?limit=abc", nil)
	rec := httptest.NewRecorder()

	h.listBlogPosts(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListBlogPosts_StorageError(t *testing.T) {
	blog := &mockBlogService{
		listPostsFn: func(_ context.Context, _ int) ([]models.BlogPost, error) {
			return nil, service.ErrStorageUnavailable
		},
	}

	h := newTestHandler(t, &service.Services{BlogService: blog})
	req := httptest.NewRequest(http.MethodGet, "/api/blog", nil)
	rec := httptest.NewRecorder()

	h.listBlogPosts(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
