package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/antonkuklin/saas-backend/internal/logger"
	"github.com/antonkuklin/saas-backend/internal/utils"
	"github.com/antonkuklin/saas-backend/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload models.SignupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, token, err := h.services.AuthService.SignUp(ctx, payload)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	log.Debug().Int64("id", registeredUser.ID).Str("email", registeredUser.Email).Msg("user signed up")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.CreatedResponse{
		OK: true,
		ID: strconv.FormatInt(registeredUser.ID, 10),
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload models.LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	loggedInUser, token, err := h.services.AuthService.Login(ctx, payload)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	log.Debug().Int64("id", loggedInUser.ID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{
		OK:      true,
		Message: "Logged in",
	}, http.StatusOK)
}

// me resolves the bearer token from the Authorization header back to the
// user it was issued for.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	if err != nil {
		log.Err(err).Msg("missing or malformed Authorization header")
		writeError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	log.Debug().Int64("id", token.UserID).Msg("token resolved to user")

	utils.WriteJSON(w, models.CreatedResponse{
		OK: true,
		ID: strconv.FormatInt(token.UserID, 10),
	}, http.StatusOK)
}
