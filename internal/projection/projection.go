package projection

import (
	"time"

	"github.com/Dan9191/finance-planner/internal/models"
)

// Build runs every projection over the same inputs and horizon
func Build(now time.Time, plans []models.BudgetPlan, accounts []models.SavingsAccount, payments []models.Payment, months int) models.Projection {
	return models.Projection{
		Months:   months,
		Expenses: ProjectExpenses(now, plans, payments, months),
		Savings:  ProjectSavings(now, accounts, months),
		Interest: ProjectInterest(now, accounts, months),
		Events:   CollectCalendarEvents(now, accounts, months),
	}
}
