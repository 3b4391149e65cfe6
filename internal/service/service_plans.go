package service

import (
	"github.com/antonkuklin/saas-backend/internal/logger"
	"github.com/antonkuklin/saas-backend/models"
)

// planService serves the static pricing tiers. Plans currently live in the
// backend binary; they move to the store once pricing becomes editable.
type planService struct {
	plans  []models.Plan
	logger *logger.Logger
}

// NewPlanService constructs a PlanService with the fixed plan set.
func NewPlanService(logger *logger.Logger) PlanService {
	return &planService{
		plans: []models.Plan{
			{
				ID:          "free",
				Name:        "Starter",
				Price:       "$0",
				Features:    []string{"Up to 3 projects", "Basic analytics", "Community support"},
				Highlighted: false,
			},
			{
				ID:          "pro",
				Name:        "Pro",
				Price:       "$19",
				Features:    []string{"Unlimited projects", "Advanced analytics", "Priority support"},
				Highlighted: true,
			},
			{
				ID:          "team",
				Name:        "Team",
				Price:       "$49",
				Features:    []string{"Team workspaces", "SSO (SAML)", "Admin controls"},
				Highlighted: false,
			},
		},
		logger: logger,
	}
}

// ListPlans returns the fixed ordered list of pricing plans.
// The slice is shared; callers must not mutate it.
func (p *planService) ListPlans() []models.Plan {
	return p.plans
}
