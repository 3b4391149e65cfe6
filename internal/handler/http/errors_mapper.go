package http

import (
	"errors"
	"net/http"

	"github.com/antonkuklin/saas-backend/internal/logger"
	"github.com/antonkuklin/saas-backend/internal/service"
	"github.com/antonkuklin/saas-backend/internal/store"
	"github.com/antonkuklin/saas-backend/internal/utils"
	"github.com/antonkuklin/saas-backend/models"
)

// writeError writes the JSON error body with the given status code.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{OK: false, Error: message}, statusCode)
}

// writeServiceError maps the closed set of service errors to HTTP statuses:
// validation → 400, bad credentials → 401, duplicate email → 409, everything
// else → 500 carrying the error's text, matching the endpoint contract.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		log.Err(err).Msg("invalid data provided")
		writeError(w, err.Error(), http.StatusBadRequest)

	case errors.Is(err, service.ErrInvalidCredentials):
		log.Err(err).Msg("invalid credentials")
		writeError(w, "Invalid credentials", http.StatusUnauthorized)

	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		log.Err(err).Msg("token is expired or invalid")
		writeError(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)

	case errors.Is(err, store.ErrEmailAlreadyExists):
		log.Err(err).Msg("email already exists")
		writeError(w, store.ErrEmailAlreadyExists.Error(), http.StatusConflict)

	default:
		log.Err(err).Msg("unexpected error")
		writeError(w, err.Error(), http.StatusInternalServerError)
	}
}
