package http

import (
	"net/http"

	"github.com/antonkuklin/saas-backend/internal/utils"
	"github.com/antonkuklin/saas-backend/models"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "SaaS Backend Running"}, http.StatusOK)
}
