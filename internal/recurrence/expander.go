// Package recurrence materialises the future occurrences of a recurring payment.
package recurrence

import (
	"time"

	"github.com/Dan9191/finance-planner/internal/models"
	"github.com/google/uuid"
)

// HorizonYears bounds how far ahead occurrences are generated
const HorizonYears = 10

// Occurrence caps per frequency. The base payment counts as the first occurrence.
const (
	WeeklyCap  = 104
	MonthlyCap = 24
	YearlyCap  = 10
)

// Rule is the recurrence of a payment
type Rule struct {
	Frequency  models.Frequency
	DayOfWeek  *int
	DayOfMonth *int
	Month      *int // 0 = January
}

// RuleFromSchedule converts a validated recurring schedule
func RuleFromSchedule(s models.RecurringSchedule) Rule {
	return Rule{
		Frequency:  s.Frequency,
		DayOfWeek:  s.DayOfWeek,
		DayOfMonth: s.DayOfMonth,
		Month:      s.Month,
	}
}

// Cap returns the occurrence limit for the rule's frequency
func (r Rule) Cap() int {
	switch r.Frequency {
	case models.FrequencyWeekly:
		return WeeklyCap
	case models.FrequencyMonthly:
		return MonthlyCap
	case models.FrequencyYearly:
		return YearlyCap
	}
	return 0
}

// Occurrence returns the date of the k-th occurrence, k = 0 being the base date.
// Monthly and yearly occurrences are computed from the base rather than from the
// previous occurrence, so a day clamped in a short month does not drift.
func (r Rule) Occurrence(base time.Time, k int) time.Time {
	switch r.Frequency {
	case models.FrequencyWeekly:
		return base.AddDate(0, 0, 7*k)
	case models.FrequencyMonthly:
		if k == 0 {
			return base
		}
		day := base.Day()
		if r.DayOfMonth != nil {
			day = *r.DayOfMonth
		}
		return dateClamped(base, base.Year(), base.Month()+time.Month(k), day)
	case models.FrequencyYearly:
		if k == 0 {
			return base
		}
		month := base.Month()
		if r.Month != nil {
			month = time.Month(*r.Month + 1)
		}
		day := base.Day()
		if r.DayOfMonth != nil {
			day = *r.DayOfMonth
		}
		return dateClamped(base, base.Year()+k, month, day)
	}
	return base
}

// Expand generates the occurrences that follow base, up to the frequency cap and
// no later than HorizonYears after now. The base payment itself is not included.
// Each occurrence gets a fresh id and starts unpaid.
func Expand(base models.Payment, rule Rule, now time.Time) []models.Payment {
	limit := rule.Cap()
	if limit <= 1 {
		return nil
	}
	horizon := now.AddDate(HorizonYears, 0, 0)

	generated := make([]models.Payment, 0, limit-1)
	for k := 1; k < limit; k++ {
		date := rule.Occurrence(base.PaymentDate, k)
		if date.After(horizon) {
			break
		}
		generated = append(generated, occurrence(base, rule, date))
	}
	return generated
}

func occurrence(base models.Payment, rule Rule, date time.Time) models.Payment {
	freq := rule.Frequency
	p := models.Payment{
		ID:           uuid.NewString(),
		UserID:       base.UserID,
		BudgetPlanID: copyString(base.BudgetPlanID),
		Category:     base.Category,
		Amount:       base.Amount,
		PaymentDate:  date,
		Type:         models.PaymentRecurring,
		Frequency:    &freq,
		IsPaid:       false,
	}
	if base.ID != "" {
		p.ParentID = copyString(&base.ID)
	}
	switch rule.Frequency {
	case models.FrequencyWeekly:
		p.DayOfWeek = copyInt(rule.DayOfWeek)
	case models.FrequencyMonthly:
		p.DayOfMonth = copyInt(rule.DayOfMonth)
	case models.FrequencyYearly:
		p.DayOfMonth = copyInt(rule.DayOfMonth)
		p.Month = copyInt(rule.Month)
	}
	return p
}

// dateClamped builds year/month/day keeping the clock of ref. A day past the end of
// the month is clamped to the month's last day.
func dateClamped(ref time.Time, year int, month time.Month, day int) time.Time {
	// normalise month overflow first (e.g. month 14 -> February next year)
	first := time.Date(year, month, 1, 0, 0, 0, 0, ref.Location())
	if last := DaysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return time.Date(first.Year(), first.Month(), day, ref.Hour(), ref.Minute(), ref.Second(), ref.Nanosecond(), ref.Location())
}

// DaysIn returns the number of days in the month
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
