package handler

import (
	"github.com/antonkuklin/saas-backend/internal/handler/http"
	"github.com/antonkuklin/saas-backend/internal/logger"
	"github.com/antonkuklin/saas-backend/internal/service"
)

// Handlers bundles the transport handlers of the application.
// HTTP is the only transport; the external interface is fixed to the
// JSON/HTTP routes consumed by the web frontend.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers wires the transport handlers to the domain services.
func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
