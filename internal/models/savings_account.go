package models

import "time"

// AccountType classifies a savings account
type AccountType string

const (
	AccountCurrent  AccountType = "current"
	AccountInterest AccountType = "interest"
	AccountGoal     AccountType = "goal"
	AccountBond     AccountType = "bond"
)

// InterestFrequency is how often an account capitalises interest
type InterestFrequency string

const (
	InterestDaily   InterestFrequency = "daily"
	InterestMonthly InterestFrequency = "monthly"
	InterestYearly  InterestFrequency = "yearly"
)

// SavingsAccount represents a tracked balance
type SavingsAccount struct {
	ID                string             `json:"id"`
	UserID            string             `json:"user_id"`
	Name              string             `json:"name"`
	Type              AccountType        `json:"type"`
	Balance           float64            `json:"balance"`
	InterestRate      *float64           `json:"interest_rate"`      // percent, 0-100
	InterestFrequency *InterestFrequency `json:"interest_frequency"` // nil disables accrual
	TargetAmount      *float64           `json:"target_amount"`
	MaturityDate      *time.Time         `json:"maturity_date"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// AccruesInterest reports whether interest projections apply to the account.
// A zero rate counts as unset.
func (a SavingsAccount) AccruesInterest() bool {
	if a.Type != AccountInterest && a.Type != AccountBond {
		return false
	}
	return a.InterestRate != nil && *a.InterestRate != 0 && a.InterestFrequency != nil && *a.InterestFrequency != ""
}

// SavingsAccountInput holds the editable fields of an account
type SavingsAccountInput struct {
	Name              string             `json:"name"`
	Type              AccountType        `json:"type"`
	Balance           float64            `json:"balance"`
	InterestRate      *float64           `json:"interestRate,omitempty"`
	InterestFrequency *InterestFrequency `json:"interestFrequency,omitempty"`
	TargetAmount      *float64           `json:"targetAmount,omitempty"`
	MaturityDate      *time.Time         `json:"maturityDate,omitempty"`
}

// Normalize drops the optional fields that have no meaning for the account type
func (in SavingsAccountInput) Normalize() SavingsAccountInput {
	if in.Type != AccountInterest && in.Type != AccountBond {
		in.InterestRate = nil
		in.InterestFrequency = nil
	}
	if in.Type != AccountGoal {
		in.TargetAmount = nil
	}
	if in.Type != AccountBond {
		in.MaturityDate = nil
	}
	return in
}
