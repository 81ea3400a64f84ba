package service

import (
	"context"
	"fmt"

	"github.com/Dan9191/finance-planner/internal/models"
	"github.com/Dan9191/finance-planner/internal/projection"
	"github.com/shopspring/decimal"
)

const recentItems = 3

// Summary aggregates the user's plans and savings for the dashboard
func (s *Service) Summary(ctx context.Context, userID string) (*models.DashboardSummary, error) {
	plans, err := s.store.ListPlans(ctx, userID)
	if err != nil {
		return nil, err
	}
	accounts, err := s.store.ListAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalSavings, totalTarget := decimal.Zero, decimal.Zero
	for _, a := range accounts {
		totalSavings = totalSavings.Add(decimal.NewFromFloat(a.Balance))
		if a.TargetAmount != nil {
			totalTarget = totalTarget.Add(decimal.NewFromFloat(*a.TargetAmount))
		}
	}
	alerts := 0
	for _, p := range plans {
		if p.MonthlyAmount > 0 {
			alerts++
		}
	}

	return &models.DashboardSummary{
		TotalBudget:          projection.MonthlyBudget(plans),
		TotalSavings:         totalSavings.InexactFloat64(),
		TotalTargetSavings:   totalTarget.InexactFloat64(),
		BudgetPlansCount:     len(plans),
		SavingsAccountsCount: len(accounts),
		BudgetAlertsCount:    alerts,
		RecentPlans:          plans[:min(recentItems, len(plans))],
		RecentAccounts:       accounts[:min(recentItems, len(accounts))],
	}, nil
}

// Analytics builds the projections for the user over months. If unpaid payments
// cannot be loaded the expense series falls back to the plan totals.
func (s *Service) Analytics(ctx context.Context, userID string, months int) (*models.Projection, error) {
	if months <= 0 {
		return nil, fmt.Errorf("months must be positive, got %d", months)
	}
	plans, err := s.store.ListPlans(ctx, userID)
	if err != nil {
		return nil, err
	}
	accounts, err := s.store.ListAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	payments, err := s.store.ListUnpaidPayments(ctx, userID, now, projection.HorizonEnd(now, months))
	if err != nil {
		s.log.Warnf("Failed to load payments for user %s, using plan baseline: %v", userID, err)
		payments = nil
	}

	p := projection.Build(now, plans, accounts, payments, months)
	return &p, nil
}
