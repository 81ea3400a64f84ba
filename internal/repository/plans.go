package repository

import (
	"context"
	"fmt"

	"github.com/Dan9191/finance-planner/internal/models"
	"github.com/google/uuid"
)

const planColumns = `id, user_id, category, monthly_amount, created_at, updated_at`

func scanPlan(row scanner) (models.BudgetPlan, error) {
	var p models.BudgetPlan
	err := row.Scan(&p.ID, &p.UserID, &p.Category, &p.MonthlyAmount, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// ListPlans returns the user's plans, newest first
func (r *Repository) ListPlans(ctx context.Context, userID string) ([]models.BudgetPlan, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+planColumns+` FROM finance.budget_plans
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	plans := []models.BudgetPlan{}
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}

// CreatePlan creates a new budget plan
func (r *Repository) CreatePlan(ctx context.Context, plan *models.BudgetPlan) error {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	query := `
		INSERT INTO finance.budget_plans (id, user_id, category, monthly_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, plan.ID, plan.UserID, plan.Category, plan.MonthlyAmount).
		Scan(&plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}
	return nil
}

// UpdatePlan overwrites a plan owned by userID
func (r *Repository) UpdatePlan(ctx context.Context, userID, id string, in models.BudgetPlanInput) (*models.BudgetPlan, error) {
	query := `
		UPDATE finance.budget_plans
		SET category = $3, monthly_amount = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2
		RETURNING ` + planColumns
	p, err := scanPlan(r.db.QueryRowContext(ctx, query, id, userID, in.Category, in.MonthlyAmount))
	if err != nil {
		return nil, notFound("plan", err)
	}
	return &p, nil
}

// DeletePlan removes a plan owned by userID
func (r *Repository) DeletePlan(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM finance.budget_plans WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	return checkAffected(res, "plan")
}
