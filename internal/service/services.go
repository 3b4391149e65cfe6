package service

import (
	"github.com/antonkuklin/saas-backend/internal/config"
	"github.com/antonkuklin/saas-backend/internal/logger"
	"github.com/antonkuklin/saas-backend/internal/store"
)

// Services bundles every domain service consumed by the HTTP layer.
type Services struct {
	AuthService       AuthService
	BlogService       BlogService
	ContactService    ContactService
	PlanService       PlanService
	DiagnosticService DiagnosticService
}

// NewServices wires all domain services to the shared storages and the
// merged application configuration.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	// A plain nil, not a typed-nil *store.DB, so the diagnostic service can
	// reliably detect a store-less process.
	var lister store.CollectionLister
	if storages.Available() {
		lister = storages.DB
	}

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, cfg.App, logger),
		BlogService:       NewBlogService(storages.BlogPostRepository, logger),
		ContactService:    NewContactService(storages.ContactMessageRepository, logger),
		PlanService:       NewPlanService(logger),
		DiagnosticService: NewDiagnosticService(lister, cfg.Storage.DB, logger),
	}
}
