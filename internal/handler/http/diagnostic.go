package http

import (
	"net/http"

	"github.com/antonkuklin/saas-backend/internal/utils"
)

// diagnostic serves the read-only connectivity report used for operational
// smoke-testing. Always 200; failures are carried inside the report body.
func (h *Handler) diagnostic(w http.ResponseWriter, r *http.Request) {
	report := h.services.DiagnosticService.Report(r.Context())
	utils.WriteJSON(w, report, http.StatusOK)
}
