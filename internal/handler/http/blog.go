package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/antonkuklin/saas-backend/internal/logger"
	"github.com/antonkuklin/saas-backend/internal/utils"
	"github.com/antonkuklin/saas-backend/models"
)

func (h *Handler) createBlogPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload models.BlogCreatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdPost, err := h.services.BlogService.CreatePost(ctx, payload)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	log.Debug().Int64("id", createdPost.ID).Str("slug", createdPost.Slug).Msg("blog post created")

	utils.WriteJSON(w, models.CreatedResponse{
		OK: true,
		ID: strconv.FormatInt(createdPost.ID, 10),
	}, http.StatusOK)
}

// listBlogPosts serves published posts. The limit query parameter caps the
// result count; anything unparseable falls back to the default.
func (h *Handler) listBlogPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 0
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		if parsed, err := strconv.Atoi(rawLimit); err == nil {
			limit = parsed
		}
	}

	posts, err := h.services.BlogService.ListPosts(ctx, limit)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}
