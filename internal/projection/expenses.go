package projection

import (
	"time"

	"github.com/Dan9191/finance-planner/internal/models"
	"github.com/shopspring/decimal"
)

// MonthlyBudget sums the monthly amounts of all plans
func MonthlyBudget(plans []models.BudgetPlan) float64 {
	total := decimal.Zero
	for _, p := range plans {
		total = total.Add(decimal.NewFromFloat(p.MonthlyAmount))
	}
	return total.InexactFloat64()
}

// ProjectExpenses returns expected spending per month. Each month defaults to the
// sum of all plan amounts. Unpaid payments dated between now and the horizon end are
// summed per month, and that sum replaces the default for the month.
// Passing nil payments yields the plan baseline for every month.
func ProjectExpenses(now time.Time, plans []models.BudgetPlan, payments []models.Payment, months int) []models.ExpensePoint {
	if months <= 0 {
		return []models.ExpensePoint{}
	}
	baseline := MonthlyBudget(plans)
	end := HorizonEnd(now, months)

	totals := make(map[string]decimal.Decimal)
	for _, p := range payments {
		if p.IsPaid || p.PaymentDate.Before(now) || p.PaymentDate.After(end) {
			continue
		}
		label := MonthLabel(p.PaymentDate.In(now.Location()))
		totals[label] = totals[label].Add(decimal.NewFromFloat(p.Amount))
	}

	points := make([]models.ExpensePoint, months)
	for i := range points {
		label := MonthLabel(MonthStart(now, i))
		expenses := baseline
		if sum, ok := totals[label]; ok && !sum.IsZero() {
			expenses = sum.InexactFloat64()
		}
		points[i] = models.ExpensePoint{Month: label, MonthIndex: i, Expenses: expenses}
	}
	return points
}
