package models

import "time"

// BudgetPlan is a monthly spending target for one category
type BudgetPlan struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Category      string    `json:"category"`
	MonthlyAmount float64   `json:"monthly_amount"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BudgetPlanInput holds the editable fields of a plan
type BudgetPlanInput struct {
	Category      string  `json:"category"`
	MonthlyAmount float64 `json:"monthlyAmount"`
}
