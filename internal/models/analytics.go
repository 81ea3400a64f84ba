package models

import "time"

// ExpensePoint is the expected spending for one projected month
type ExpensePoint struct {
	Month      string  `json:"month"`
	MonthIndex int     `json:"monthIndex"`
	Expenses   float64 `json:"expenses"`
}

// SavingsPoint is the projected total balance at the end of one month
type SavingsPoint struct {
	Month      string  `json:"month"`
	MonthIndex int     `json:"monthIndex"`
	Savings    float64 `json:"savings"`
}

// InterestPoint is the interest paid out in one month
type InterestPoint struct {
	Month      string  `json:"month"`
	MonthIndex int     `json:"monthIndex"`
	Interest   float64 `json:"interest"`
}

// CalendarEventType is the kind of a calendar event
type CalendarEventType string

const (
	EventBond CalendarEventType = "bond"
	EventGoal CalendarEventType = "goal"
)

// CalendarEvent marks a maturity or an unmet goal
type CalendarEvent struct {
	Date  time.Time         `json:"date"`
	Title string            `json:"title"`
	Type  CalendarEventType `json:"type"`
}

// Projection bundles every forecast series for one horizon
type Projection struct {
	Months   int             `json:"months"`
	Expenses []ExpensePoint  `json:"expenses"`
	Savings  []SavingsPoint  `json:"savings"`
	Interest []InterestPoint `json:"interest"`
	Events   []CalendarEvent `json:"events"`
}

// DashboardSummary represents aggregate figures for the dashboard
type DashboardSummary struct {
	TotalBudget          float64          `json:"totalBudget"`
	TotalSavings         float64          `json:"totalSavings"`
	TotalTargetSavings   float64          `json:"totalTargetSavings"`
	BudgetPlansCount     int              `json:"budgetPlansCount"`
	SavingsAccountsCount int              `json:"savingsAccountsCount"`
	BudgetAlertsCount    int              `json:"budgetAlertsCount"`
	RecentPlans          []BudgetPlan     `json:"recentPlans"`
	RecentAccounts       []SavingsAccount `json:"recentAccounts"`
}
