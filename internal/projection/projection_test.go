package projection

import (
	"math"
	"testing"
	"time"

	"github.com/Dan9191/finance-planner/internal/models"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func f64(v float64) *float64 { return &v }

func freq(f models.InterestFrequency) *models.InterestFrequency { return &f }

func interestAccount(balance, rate float64, f models.InterestFrequency) models.SavingsAccount {
	return models.SavingsAccount{
		Name:              "Deposit",
		Type:              models.AccountInterest,
		Balance:           balance,
		InterestRate:      f64(rate),
		InterestFrequency: freq(f),
	}
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel(mustDate(t, "2026-01-15")); got != "sty 2026" {
		t.Fatalf("MonthLabel = %q, want %q", got, "sty 2026")
	}
	if got := MonthLabel(mustDate(t, "2027-10-01")); got != "paź 2027" {
		t.Fatalf("MonthLabel = %q, want %q", got, "paź 2027")
	}
}

func TestHorizonEnd(t *testing.T) {
	now := mustDate(t, "2026-11-19")
	end := HorizonEnd(now, 6)
	if d := end.Format("2006-01-02 15:04:05"); d != "2027-04-30 23:59:59" {
		t.Fatalf("HorizonEnd = %s, want 2027-04-30 23:59:59", d)
	}
}

func TestProjectExpensesOverridesBaseline(t *testing.T) {
	now := mustDate(t, "2026-01-10")
	plans := []models.BudgetPlan{{MonthlyAmount: 1000}, {MonthlyAmount: 500}}
	payments := []models.Payment{
		{Amount: 2000, PaymentDate: mustDate(t, "2026-04-05")},
	}

	got := ProjectExpenses(now, plans, payments, 6)
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
	for i, p := range got {
		want := 1500.0
		if i == 3 {
			want = 2000
		}
		if p.Expenses != want {
			t.Fatalf("month %d expenses = %.2f, want %.2f", i, p.Expenses, want)
		}
		if p.MonthIndex != i {
			t.Fatalf("MonthIndex = %d, want %d", p.MonthIndex, i)
		}
	}
	if got[3].Month != "kwi 2026" {
		t.Fatalf("month 3 label = %q, want kwi 2026", got[3].Month)
	}
}

func TestProjectExpensesSumsMonthAndSkipsPaid(t *testing.T) {
	now := mustDate(t, "2026-01-10")
	plans := []models.BudgetPlan{{MonthlyAmount: 300}}
	payments := []models.Payment{
		{Amount: 100, PaymentDate: mustDate(t, "2026-02-01")},
		{Amount: 50.5, PaymentDate: mustDate(t, "2026-02-20")},
		{Amount: 999, PaymentDate: mustDate(t, "2026-03-01"), IsPaid: true},
		{Amount: 777, PaymentDate: mustDate(t, "2026-01-02")}, // before now
		{Amount: 888, PaymentDate: mustDate(t, "2026-07-01")}, // after horizon
	}

	got := ProjectExpenses(now, plans, payments, 6)
	want := []float64{300, 150.5, 300, 300, 300, 300}
	for i, w := range want {
		if got[i].Expenses != w {
			t.Fatalf("month %d expenses = %.2f, want %.2f", i, got[i].Expenses, w)
		}
	}
}

func TestProjectExpensesFallback(t *testing.T) {
	now := mustDate(t, "2026-01-10")
	plans := []models.BudgetPlan{{MonthlyAmount: 120.25}, {MonthlyAmount: 79.75}}
	for i, p := range ProjectExpenses(now, plans, nil, 12) {
		if p.Expenses != 200 {
			t.Fatalf("month %d expenses = %.2f, want 200", i, p.Expenses)
		}
	}
}

func TestProjectSavingsCompoundsMonthly(t *testing.T) {
	now := mustDate(t, "2026-01-01")
	accounts := []models.SavingsAccount{
		interestAccount(1200, 12, models.InterestMonthly),
		{Name: "Wallet", Type: models.AccountCurrent, Balance: 300},
	}

	got := ProjectSavings(now, accounts, 2)
	// 1200 * 1% = 12, then 1212 * 1% = 12.12
	if got[0].Savings != 1512 {
		t.Fatalf("month 0 savings = %.2f, want 1512.00", got[0].Savings)
	}
	if got[1].Savings != 1524.12 {
		t.Fatalf("month 1 savings = %.2f, want 1524.12", got[1].Savings)
	}
	if accounts[0].Balance != 1200 {
		t.Fatalf("input balance mutated to %.2f", accounts[0].Balance)
	}
}

func TestProjectSavingsYearlySpreadsEvenly(t *testing.T) {
	now := mustDate(t, "2026-01-01")
	yearly := ProjectSavings(now, []models.SavingsAccount{interestAccount(1000, 6, models.InterestYearly)}, 12)
	monthly := ProjectSavings(now, []models.SavingsAccount{interestAccount(1000, 6, models.InterestMonthly)}, 12)
	for i := range yearly {
		if yearly[i].Savings != monthly[i].Savings {
			t.Fatalf("month %d yearly = %.2f, monthly = %.2f, want equal", i, yearly[i].Savings, monthly[i].Savings)
		}
	}
}

func TestProjectSavingsDailyUsesThirtyDayMonth(t *testing.T) {
	now := mustDate(t, "2026-01-01")
	got := ProjectSavings(now, []models.SavingsAccount{interestAccount(3650, 10, models.InterestDaily)}, 1)
	// 3650 * 0.10 / 365 * 30 = 30
	if got[0].Savings != 3680 {
		t.Fatalf("savings = %.2f, want 3680.00", got[0].Savings)
	}
}

func TestProjectSavingsIgnoresNonAccruingAccounts(t *testing.T) {
	now := mustDate(t, "2026-01-01")
	accounts := []models.SavingsAccount{
		{Name: "Goal", Type: models.AccountGoal, Balance: 500, InterestRate: f64(50), InterestFrequency: freq(models.InterestMonthly)},
		{Name: "No frequency", Type: models.AccountInterest, Balance: 500, InterestRate: f64(5)},
		{Name: "No rate", Type: models.AccountBond, Balance: 500, InterestFrequency: freq(models.InterestMonthly)},
	}
	for i, p := range ProjectSavings(now, accounts, 6) {
		if p.Savings != 1500 {
			t.Fatalf("month %d savings = %.2f, want 1500", i, p.Savings)
		}
	}
}

func TestProjectSavingsMonotonic(t *testing.T) {
	now := mustDate(t, "2026-03-15")
	accounts := []models.SavingsAccount{
		interestAccount(1000, 4.5, models.InterestMonthly),
		interestAccount(2500, 7, models.InterestYearly),
		interestAccount(800, 3, models.InterestDaily),
		{Name: "Bond", Type: models.AccountBond, Balance: 10000, InterestRate: f64(6.8), InterestFrequency: freq(models.InterestYearly)},
		{Name: "Zero", Type: models.AccountInterest, Balance: 100, InterestRate: f64(0), InterestFrequency: freq(models.InterestMonthly)},
	}
	got := ProjectSavings(now, accounts, 24)
	for i := 1; i < len(got); i++ {
		if got[i].Savings < got[i-1].Savings {
			t.Fatalf("month %d savings %.2f < month %d savings %.2f", i, got[i].Savings, i-1, got[i-1].Savings)
		}
	}
}

func TestProjectInterestYearlyPaysAnnually(t *testing.T) {
	now := mustDate(t, "2026-01-01")
	got := ProjectInterest(now, []models.SavingsAccount{interestAccount(1000, 10, models.InterestYearly)}, 24)
	if len(got) != 24 {
		t.Fatalf("len = %d, want 24", len(got))
	}
	for i, p := range got {
		switch i {
		case 11:
			if p.Interest != 100 {
				t.Fatalf("month 11 interest = %.2f, want 100.00", p.Interest)
			}
		case 23:
			if p.Interest != 110 {
				t.Fatalf("month 23 interest = %.2f, want 110.00", p.Interest)
			}
		default:
			if p.Interest != 0 {
				t.Fatalf("month %d interest = %.2f, want 0", i, p.Interest)
			}
		}
	}
}

func TestProjectInterestMonthlyCompounds(t *testing.T) {
	now := mustDate(t, "2026-01-01")
	got := ProjectInterest(now, []models.SavingsAccount{interestAccount(1200, 12, models.InterestMonthly)}, 3)
	want := []float64{12, 12.12, 12.24}
	for i, w := range want {
		if math.Abs(got[i].Interest-w) > 1e-9 {
			t.Fatalf("month %d interest = %.4f, want %.2f", i, got[i].Interest, w)
		}
	}
}

func TestProjectInterestLabelsMatchSavings(t *testing.T) {
	now := mustDate(t, "2026-11-19")
	accounts := []models.SavingsAccount{interestAccount(100, 5, models.InterestMonthly)}
	savings := ProjectSavings(now, accounts, 12)
	interest := ProjectInterest(now, accounts, 12)
	expenses := ProjectExpenses(now, nil, nil, 12)
	for i := range savings {
		if savings[i].Month != interest[i].Month || savings[i].Month != expenses[i].Month {
			t.Fatalf("month %d labels %q / %q / %q differ", i, savings[i].Month, interest[i].Month, expenses[i].Month)
		}
	}
	if savings[1].Month != "gru 2026" || savings[2].Month != "sty 2027" {
		t.Fatalf("labels = %q, %q, want gru 2026, sty 2027", savings[1].Month, savings[2].Month)
	}
}

func TestZeroHorizonAndEmptyInputs(t *testing.T) {
	now := mustDate(t, "2026-01-01")
	if got := ProjectExpenses(now, nil, nil, 0); len(got) != 0 {
		t.Fatalf("expenses len = %d, want 0", len(got))
	}
	if got := ProjectSavings(now, nil, -3); len(got) != 0 {
		t.Fatalf("savings len = %d, want 0", len(got))
	}
	if got := CollectCalendarEvents(now, nil, 0); got == nil || len(got) != 0 {
		t.Fatalf("events = %v, want empty", got)
	}
	for i, p := range ProjectInterest(now, nil, 6) {
		if p.Interest != 0 {
			t.Fatalf("month %d interest = %.2f, want 0", i, p.Interest)
		}
	}
	for i, p := range ProjectExpenses(now, nil, nil, 6) {
		if p.Expenses != 0 {
			t.Fatalf("month %d expenses = %.2f, want 0", i, p.Expenses)
		}
	}
}

func TestCollectCalendarEvents(t *testing.T) {
	now := mustDate(t, "2026-01-10")
	date := func(s string) *time.Time { d := mustDate(t, s); return &d }
	accounts := []models.SavingsAccount{
		{Name: "Late bond", Type: models.AccountBond, MaturityDate: date("2026-05-01")},
		{Name: "Past bond", Type: models.AccountBond, MaturityDate: date("2026-01-09")},
		{Name: "Far bond", Type: models.AccountBond, MaturityDate: date("2026-07-01")},
		{Name: "Edge bond", Type: models.AccountBond, MaturityDate: date("2026-06-30")},
		{Name: "Early bond", Type: models.AccountBond, MaturityDate: date("2026-02-01")},
		{Name: "Car", Type: models.AccountGoal, Balance: 500, TargetAmount: f64(1000)},
		{Name: "Done", Type: models.AccountGoal, Balance: 1000, TargetAmount: f64(1000)},
		{Name: "No target", Type: models.AccountGoal, Balance: 10},
	}

	got := CollectCalendarEvents(now, accounts, 6)
	want := []struct {
		title string
		typ   models.CalendarEventType
	}{
		{"Cel: Car", models.EventGoal},
		{"Termin: Early bond", models.EventBond},
		{"Termin: Late bond", models.EventBond},
		{"Termin: Edge bond", models.EventBond},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d: %+v", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].Title != w.title || got[i].Type != w.typ {
			t.Fatalf("event %d = %s/%s, want %s/%s", i, got[i].Title, got[i].Type, w.title, w.typ)
		}
	}
	if !got[0].Date.Equal(now) {
		t.Fatalf("goal event dated %s, want now", got[0].Date)
	}
	end := HorizonEnd(now, 6)
	for _, e := range got {
		if e.Date.Before(now) || e.Date.After(end) {
			t.Fatalf("event %s at %s outside horizon", e.Title, e.Date)
		}
	}
}

func TestCustomDatesRoundTripKeepsEventOrder(t *testing.T) {
	now := mustDate(t, "2026-01-01")
	dates := []time.Time{mustDate(t, "2026-03-01"), mustDate(t, "2026-02-01"), mustDate(t, "2026-05-01")}

	encoded, err := models.EncodeCustomDates(dates)
	if err != nil {
		t.Fatalf("EncodeCustomDates: %v", err)
	}
	decoded, err := models.DecodeCustomDates(encoded)
	if err != nil {
		t.Fatalf("DecodeCustomDates: %v", err)
	}

	toAccounts := func(ds []time.Time) []models.SavingsAccount {
		out := make([]models.SavingsAccount, len(ds))
		for i := range ds {
			d := ds[i]
			out[i] = models.SavingsAccount{Name: d.Format("2006-01-02"), Type: models.AccountBond, MaturityDate: &d}
		}
		return out
	}
	before := CollectCalendarEvents(now, toAccounts(dates), 12)
	after := CollectCalendarEvents(now, toAccounts(decoded), 12)
	if len(before) != 3 || len(after) != 3 {
		t.Fatalf("events = %d / %d, want 3", len(before), len(after))
	}
	for i := range before {
		if before[i].Title != after[i].Title || !before[i].Date.Equal(after[i].Date) {
			t.Fatalf("event %d = %s, want %s", i, after[i].Title, before[i].Title)
		}
	}
}

func TestBuild(t *testing.T) {
	now := mustDate(t, "2026-01-01")
	p := Build(now, []models.BudgetPlan{{MonthlyAmount: 10}}, []models.SavingsAccount{interestAccount(100, 12, models.InterestMonthly)}, nil, 6)
	if p.Months != 6 || len(p.Expenses) != 6 || len(p.Savings) != 6 || len(p.Interest) != 6 {
		t.Fatalf("unexpected projection shape: %+v", p)
	}
	if p.Events == nil {
		t.Fatal("Events should be empty, not nil")
	}
}

func TestValidHorizon(t *testing.T) {
	for _, m := range []int{6, 12, 24} {
		if !ValidHorizon(m) {
			t.Fatalf("ValidHorizon(%d) = false", m)
		}
	}
	if ValidHorizon(7) {
		t.Fatal("ValidHorizon(7) = true")
	}
}
