package http

import (
	"net/http"

	"github.com/antonkuklin/saas-backend/internal/utils"
)

// listPlans serves the static pricing tiers. No inputs, no failure mode.
func (h *Handler) listPlans(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.PlanService.ListPlans(), http.StatusOK)
}
