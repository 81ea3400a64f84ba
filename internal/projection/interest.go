package projection

import (
	"time"

	"github.com/Dan9191/finance-planner/internal/models"
)

// ProjectInterest returns the interest paid out in each month. Monthly and daily
// accounts pay every month. Yearly accounts pay the full annual amount only in the
// 12th, 24th, ... month of the horizon and nothing in between.
//
// This is a separate simulation from ProjectSavings: there yearly accounts accrue a
// twelfth every month. Both behaviours are kept as they are.
func ProjectInterest(now time.Time, accounts []models.SavingsAccount, months int) []models.InterestPoint {
	if months <= 0 {
		return []models.InterestPoint{}
	}
	arena := newArena(accounts)

	points := make([]models.InterestPoint, months)
	for i := range points {
		total := 0.0
		for j := range arena {
			acc := &arena[j]
			if !acc.accrues {
				continue
			}
			var interest float64
			switch acc.frequency {
			case models.InterestMonthly, models.InterestDaily:
				interest = acc.balance * monthlyRate(acc.rate, acc.frequency)
			case models.InterestYearly:
				if i%12 == 11 {
					interest = acc.balance * acc.rate
				}
			}
			total += interest
			acc.balance += interest
		}
		points[i] = models.InterestPoint{
			Month:      MonthLabel(MonthStart(now, i)),
			MonthIndex: i,
			Interest:   round2(total),
		}
	}
	return points
}
