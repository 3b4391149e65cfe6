package service

import (
	"testing"

	"github.com/antonkuklin/saas-backend/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanService_ListPlans(t *testing.T) {
	svc := NewPlanService(logger.Nop())

	plans := svc.ListPlans()
	require.Len(t, plans, 3)

	assert.Equal(t, "free", plans[0].ID)
	assert.Equal(t, "pro", plans[1].ID)
	assert.Equal(t, "team", plans[2].ID)

	assert.False(t, plans[0].Highlighted)
	assert.True(t, plans[1].Highlighted, "pro tier should be highlighted")
	assert.False(t, plans[2].Highlighted)

	for _, plan := range plans {
		assert.NotEmpty(t, plan.Name)
		assert.NotEmpty(t, plan.Price)
		assert.NotEmpty(t, plan.Features)
	}
}

func TestPlanService_ListPlans_Stable(t *testing.T) {
	svc := NewPlanService(logger.Nop())

	first := svc.ListPlans()
	second := svc.ListPlans()
	assert.Equal(t, first, second)
}
