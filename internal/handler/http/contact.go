package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/antonkuklin/saas-backend/internal/logger"
	"github.com/antonkuklin/saas-backend/internal/utils"
	"github.com/antonkuklin/saas-backend/models"
)

func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload models.ContactPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdMessage, err := h.services.ContactService.SubmitMessage(ctx, payload)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	log.Debug().Int64("id", createdMessage.ID).Msg("contact message stored")

	utils.WriteJSON(w, models.CreatedResponse{
		OK: true,
		ID: strconv.FormatInt(createdMessage.ID, 10),
	}, http.StatusOK)
}
