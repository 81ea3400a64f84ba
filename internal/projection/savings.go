package projection

import (
	"time"

	"github.com/Dan9191/finance-planner/internal/models"
)

// daysPerMonth approximates a month for daily-capitalised accounts
const daysPerMonth = 30

// runningBalance is one account's balance inside a single simulation
type runningBalance struct {
	balance   float64
	rate      float64 // fraction, 0.05 for 5%
	frequency models.InterestFrequency
	accrues   bool
}

// newArena copies the accounts into simulation state. Each projection owns its arena.
func newArena(accounts []models.SavingsAccount) []runningBalance {
	arena := make([]runningBalance, len(accounts))
	for i, a := range accounts {
		arena[i] = runningBalance{balance: a.Balance, accrues: a.AccruesInterest()}
		if arena[i].accrues {
			arena[i].rate = *a.InterestRate / 100
			arena[i].frequency = *a.InterestFrequency
		}
	}
	return arena
}

// monthlyRate is the rate applied once per simulated month. Yearly accounts are
// spread evenly over twelve months; daily accounts use a 30 day month.
func monthlyRate(rate float64, freq models.InterestFrequency) float64 {
	switch freq {
	case models.InterestMonthly, models.InterestYearly:
		return rate / 12
	case models.InterestDaily:
		return rate / 365 * daysPerMonth
	}
	return 0
}

// ProjectSavings returns the total balance across all accounts at the end of each
// month, with interest compounding monthly on interest and bond accounts.
func ProjectSavings(now time.Time, accounts []models.SavingsAccount, months int) []models.SavingsPoint {
	if months <= 0 {
		return []models.SavingsPoint{}
	}
	arena := newArena(accounts)
	total := 0.0
	for _, acc := range arena {
		total += acc.balance
	}

	points := make([]models.SavingsPoint, months)
	for i := range points {
		for j := range arena {
			acc := &arena[j]
			if !acc.accrues {
				continue
			}
			interest := acc.balance * monthlyRate(acc.rate, acc.frequency)
			acc.balance += interest
			total += interest
		}
		points[i] = models.SavingsPoint{
			Month:      MonthLabel(MonthStart(now, i)),
			MonthIndex: i,
			Savings:    round2(total),
		}
	}
	return points
}
