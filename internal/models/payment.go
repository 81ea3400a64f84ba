package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// PaymentType selects how a payment is scheduled
type PaymentType string

const (
	PaymentOneTime   PaymentType = "one-time"
	PaymentRecurring PaymentType = "recurring"
	PaymentCustom    PaymentType = "custom"
)

// Frequency is the step of a recurring payment
type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Payment represents a planned or completed expense. Occurrences generated from a
// recurring payment are stored as payments too, with ParentID pointing at the base record.
type Payment struct {
	ID           string      `json:"id"`
	UserID       string      `json:"user_id"`
	BudgetPlanID *string     `json:"budget_plan_id"`
	ParentID     *string     `json:"parent_id,omitempty"`
	Category     string      `json:"category"`
	Amount       float64     `json:"amount"`
	PaymentDate  time.Time   `json:"payment_date"`
	Type         PaymentType `json:"type"`
	Frequency    *Frequency  `json:"frequency,omitempty"`
	DayOfWeek    *int        `json:"day_of_week,omitempty"`  // 0 = Sunday
	DayOfMonth   *int        `json:"day_of_month,omitempty"` // 1-31
	Month        *int        `json:"month,omitempty"`        // 0 = January
	CustomDates  []time.Time `json:"custom_dates,omitempty"`
	IsPaid       bool        `json:"is_paid"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// EncodeCustomDates serialises a custom schedule into the string form kept in storage
func EncodeCustomDates(dates []time.Time) (string, error) {
	raw := make([]string, len(dates))
	for i, d := range dates {
		raw[i] = d.UTC().Format(time.RFC3339)
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return "", fmt.Errorf("failed to encode custom dates: %w", err)
	}
	return string(b), nil
}

// DecodeCustomDates parses the stored form back. Plain YYYY-MM-DD entries are accepted.
func DecodeCustomDates(s string) ([]time.Time, error) {
	if s == "" {
		return nil, nil
	}
	var raw []string
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode custom dates: %w", err)
	}
	dates := make([]time.Time, 0, len(raw))
	for _, r := range raw {
		d, err := ParseDate(r)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, nil
}

// ParseDate accepts RFC 3339 timestamps and bare dates
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

// PaymentSchedule is the type-specific part of a new payment. Exactly one of
// OneTimeSchedule, RecurringSchedule or CustomSchedule.
type PaymentSchedule interface {
	PaymentType() PaymentType
}

// OneTimeSchedule has no extra fields
type OneTimeSchedule struct{}

func (OneTimeSchedule) PaymentType() PaymentType { return PaymentOneTime }

// RecurringSchedule describes a repeating payment
type RecurringSchedule struct {
	Frequency  Frequency
	DayOfWeek  *int
	DayOfMonth *int
	Month      *int
}

func (RecurringSchedule) PaymentType() PaymentType { return PaymentRecurring }

// CustomSchedule lists explicit dates
type CustomSchedule struct {
	Dates []time.Time
}

func (CustomSchedule) PaymentType() PaymentType { return PaymentCustom }

// NewPaymentInput is a validated request to create a payment
type NewPaymentInput struct {
	Category     string
	Amount       float64
	PaymentDate  time.Time
	BudgetPlanID *string
	IsPaid       bool
	Schedule     PaymentSchedule
}

// Payment builds the base record for the input. Fields of other schedule types stay nil.
func (in NewPaymentInput) Payment(userID string) Payment {
	p := Payment{
		UserID:       userID,
		BudgetPlanID: in.BudgetPlanID,
		Category:     in.Category,
		Amount:       in.Amount,
		PaymentDate:  in.PaymentDate,
		Type:         PaymentOneTime,
		IsPaid:       in.IsPaid,
	}
	switch s := in.Schedule.(type) {
	case RecurringSchedule:
		p.Type = PaymentRecurring
		freq := s.Frequency
		p.Frequency = &freq
		p.DayOfWeek = s.DayOfWeek
		p.DayOfMonth = s.DayOfMonth
		p.Month = s.Month
	case CustomSchedule:
		p.Type = PaymentCustom
		p.CustomDates = s.Dates
	}
	return p
}

// PaymentUpdate is a partial update; nil fields are left untouched.
// ClearBudgetPlan unlinks the plan when set.
type PaymentUpdate struct {
	Category        *string
	Amount          *float64
	PaymentDate     *time.Time
	IsPaid          *bool
	BudgetPlanID    *string
	ClearBudgetPlan bool
}

// Apply writes the set fields onto p
func (u PaymentUpdate) Apply(p *Payment) {
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Amount != nil {
		p.Amount = *u.Amount
	}
	if u.PaymentDate != nil {
		p.PaymentDate = *u.PaymentDate
	}
	if u.IsPaid != nil {
		p.IsPaid = *u.IsPaid
	}
	if u.ClearBudgetPlan {
		p.BudgetPlanID = nil
	} else if u.BudgetPlanID != nil {
		id := *u.BudgetPlanID
		p.BudgetPlanID = &id
	}
}

// PaymentReminder is an unpaid payment joined with its owner, used for email reminders
type PaymentReminder struct {
	Payment  Payment
	Email    string
	UserName string
}
