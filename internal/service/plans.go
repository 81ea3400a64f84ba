package service

import (
	"context"

	"github.com/Dan9191/finance-planner/internal/models"
)

// ListPlans returns the user's budget plans
func (s *Service) ListPlans(ctx context.Context, userID string) ([]models.BudgetPlan, error) {
	return s.store.ListPlans(ctx, userID)
}

// CreatePlan creates a budget plan for the user
func (s *Service) CreatePlan(ctx context.Context, userID string, in models.BudgetPlanInput) (*models.BudgetPlan, error) {
	plan := &models.BudgetPlan{
		UserID:        userID,
		Category:      in.Category,
		MonthlyAmount: in.MonthlyAmount,
	}
	if err := s.store.CreatePlan(ctx, plan); err != nil {
		return nil, err
	}
	s.log.Infof("Plan created for user %s: %s", userID, plan.Category)
	return plan, nil
}

// UpdatePlan edits a plan owned by the user
func (s *Service) UpdatePlan(ctx context.Context, userID, id string, in models.BudgetPlanInput) (*models.BudgetPlan, error) {
	return s.store.UpdatePlan(ctx, userID, id, in)
}

// DeletePlan removes a plan owned by the user. Linked payments keep existing unlinked.
func (s *Service) DeletePlan(ctx context.Context, userID, id string) error {
	if err := s.store.DeletePlan(ctx, userID, id); err != nil {
		return err
	}
	s.log.Infof("Plan %s deleted for user %s", id, userID)
	return nil
}
