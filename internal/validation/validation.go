// Package validation checks request bodies against JSON schemas and converts them
// into typed inputs.
package validation

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Dan9191/finance-planner/internal/models"
	"github.com/xeipuuv/gojsonschema"
)

// Error is returned for a body that does not satisfy its schema
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field == "" || e.Field == "(root)" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	register       = mustSchema(registerSchema)
	login          = mustSchema(loginSchema)
	forgotPassword = mustSchema(forgotPasswordSchema)
	resetPassword  = mustSchema(resetPasswordSchema)
	budgetPlan     = mustSchema(budgetPlanSchema)
	savingsAccount = mustSchema(savingsAccountSchema)
	payment        = mustSchema(paymentSchema)
	paymentUpdate  = mustSchema(paymentUpdateSchema)
)

func mustSchema(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(fmt.Sprintf("invalid schema: %v", err))
	}
	return schema
}

// validate checks body against schema and decodes it into dst
func validate(schema *gojsonschema.Schema, body []byte, dst interface{}) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return &Error{Message: "malformed JSON body"}
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return &Error{Field: first.Field(), Message: first.Description()}
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return &Error{Message: fmt.Sprintf("malformed JSON body: %v", err)}
	}
	return nil
}

// Credentials is a register or login request
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Register validates a registration request
func Register(body []byte) (Credentials, error) {
	var c Credentials
	if err := validate(register, body, &c); err != nil {
		return Credentials{}, err
	}
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	return c, nil
}

// Login validates a login request
func Login(body []byte) (Credentials, error) {
	var c Credentials
	if err := validate(login, body, &c); err != nil {
		return Credentials{}, err
	}
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	return c, nil
}

// ForgotPassword validates a reset-link request and returns the email
func ForgotPassword(body []byte) (string, error) {
	var req struct {
		Email string `json:"email"`
	}
	if err := validate(forgotPassword, body, &req); err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(req.Email)), nil
}

// PasswordReset is a request to set a new password with a reset token
type PasswordReset struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// ResetPassword validates a password reset request
func ResetPassword(body []byte) (PasswordReset, error) {
	var req PasswordReset
	if err := validate(resetPassword, body, &req); err != nil {
		return PasswordReset{}, err
	}
	return req, nil
}

// BudgetPlan validates a plan body
func BudgetPlan(body []byte) (models.BudgetPlanInput, error) {
	var in models.BudgetPlanInput
	if err := validate(budgetPlan, body, &in); err != nil {
		return models.BudgetPlanInput{}, err
	}
	in.Category = strings.TrimSpace(in.Category)
	return in, nil
}

// SavingsAccount validates an account body. Fields that do not apply to the
// account type are dropped.
func SavingsAccount(body []byte) (models.SavingsAccountInput, error) {
	var req struct {
		Name              string                    `json:"name"`
		Type              models.AccountType        `json:"type"`
		Balance           float64                   `json:"balance"`
		InterestRate      *float64                  `json:"interestRate"`
		InterestFrequency *models.InterestFrequency `json:"interestFrequency"`
		TargetAmount      *float64                  `json:"targetAmount"`
		MaturityDate      *string                   `json:"maturityDate"`
	}
	if err := validate(savingsAccount, body, &req); err != nil {
		return models.SavingsAccountInput{}, err
	}
	in := models.SavingsAccountInput{
		Name:              strings.TrimSpace(req.Name),
		Type:              req.Type,
		Balance:           req.Balance,
		InterestRate:      req.InterestRate,
		InterestFrequency: req.InterestFrequency,
		TargetAmount:      req.TargetAmount,
	}
	if req.MaturityDate != nil && *req.MaturityDate != "" {
		d, err := models.ParseDate(*req.MaturityDate)
		if err != nil {
			return models.SavingsAccountInput{}, &Error{Field: "maturityDate", Message: err.Error()}
		}
		in.MaturityDate = &d
	}
	return in.Normalize(), nil
}

type paymentRequest struct {
	Category     *string  `json:"category"`
	Amount       *float64 `json:"amount"`
	PaymentDate  *string  `json:"paymentDate"`
	Type         string   `json:"type"`
	BudgetPlanID *string  `json:"budgetPlanId"`
	Frequency    string   `json:"frequency"`
	DayOfWeek    *int     `json:"dayOfWeek"`
	DayOfMonth   *int     `json:"dayOfMonth"`
	Month        *int     `json:"month"`
	CustomDates  []string `json:"customDates"`
	IsPaid       *bool    `json:"isPaid"`
}

// Payment validates a new payment body and builds its schedule variant
func Payment(body []byte) (models.NewPaymentInput, error) {
	var req paymentRequest
	if err := validate(payment, body, &req); err != nil {
		return models.NewPaymentInput{}, err
	}
	date, err := models.ParseDate(*req.PaymentDate)
	if err != nil {
		return models.NewPaymentInput{}, &Error{Field: "paymentDate", Message: err.Error()}
	}

	in := models.NewPaymentInput{
		Category:    strings.TrimSpace(*req.Category),
		Amount:      *req.Amount,
		PaymentDate: date,
		Schedule:    models.OneTimeSchedule{},
	}
	if req.BudgetPlanID != nil && *req.BudgetPlanID != "" {
		in.BudgetPlanID = req.BudgetPlanID
	}
	if req.IsPaid != nil {
		in.IsPaid = *req.IsPaid
	}

	switch models.PaymentType(req.Type) {
	case models.PaymentRecurring:
		in.Schedule = models.RecurringSchedule{
			Frequency:  models.Frequency(req.Frequency),
			DayOfWeek:  req.DayOfWeek,
			DayOfMonth: req.DayOfMonth,
			Month:      req.Month,
		}
	case models.PaymentCustom:
		dates := make([]time.Time, 0, len(req.CustomDates))
		for _, s := range req.CustomDates {
			d, err := models.ParseDate(s)
			if err != nil {
				return models.NewPaymentInput{}, &Error{Field: "customDates", Message: err.Error()}
			}
			dates = append(dates, d)
		}
		in.Schedule = models.CustomSchedule{Dates: dates}
	}
	return in, nil
}

// PaymentUpdate validates a partial payment update. Only category, amount,
// paymentDate, isPaid and budgetPlanId are applied; an empty or null
// budgetPlanId unlinks the plan.
func PaymentUpdate(body []byte) (models.PaymentUpdate, error) {
	var req paymentRequest
	if err := validate(paymentUpdate, body, &req); err != nil {
		return models.PaymentUpdate{}, err
	}
	var present map[string]json.RawMessage
	if err := json.Unmarshal(body, &present); err != nil {
		return models.PaymentUpdate{}, &Error{Message: "malformed JSON body"}
	}

	u := models.PaymentUpdate{
		Category: req.Category,
		Amount:   req.Amount,
		IsPaid:   req.IsPaid,
	}
	if u.Category != nil {
		c := strings.TrimSpace(*u.Category)
		u.Category = &c
	}
	if req.PaymentDate != nil {
		d, err := models.ParseDate(*req.PaymentDate)
		if err != nil {
			return models.PaymentUpdate{}, &Error{Field: "paymentDate", Message: err.Error()}
		}
		u.PaymentDate = &d
	}
	if _, ok := present["budgetPlanId"]; ok {
		if req.BudgetPlanID == nil || *req.BudgetPlanID == "" {
			u.ClearBudgetPlan = true
		} else {
			u.BudgetPlanID = req.BudgetPlanID
		}
	}
	return u, nil
}
