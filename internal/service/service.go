package service

import (
	"context"
	"errors"
	"time"

	"github.com/Dan9191/finance-planner/internal/config"
	"github.com/Dan9191/finance-planner/internal/integrations/cbr"
	"github.com/Dan9191/finance-planner/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Store is the persistence the service needs. *repository.Repository implements it.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error

	CreateSession(ctx context.Context, session *models.Session) error
	FindSession(ctx context.Context, tokenHash string) (*models.Session, error)
	DeleteSession(ctx context.Context, tokenHash string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)

	ListPlans(ctx context.Context, userID string) ([]models.BudgetPlan, error)
	CreatePlan(ctx context.Context, plan *models.BudgetPlan) error
	UpdatePlan(ctx context.Context, userID, id string, in models.BudgetPlanInput) (*models.BudgetPlan, error)
	DeletePlan(ctx context.Context, userID, id string) error

	ListAccounts(ctx context.Context, userID string) ([]models.SavingsAccount, error)
	CreateAccount(ctx context.Context, account *models.SavingsAccount) error
	UpdateAccount(ctx context.Context, userID, id string, in models.SavingsAccountInput) (*models.SavingsAccount, error)
	DeleteAccount(ctx context.Context, userID, id string) error

	ListPayments(ctx context.Context, userID string, from, to *time.Time) ([]models.Payment, error)
	ListUnpaidPayments(ctx context.Context, userID string, from, to time.Time) ([]models.Payment, error)
	GetPayment(ctx context.Context, userID, id string) (*models.Payment, error)
	CreatePayments(ctx context.Context, base *models.Payment, occurrences []models.Payment) error
	UpdatePayment(ctx context.Context, p *models.Payment) error
	DeletePayment(ctx context.Context, userID, id string) error
	DueReminders(ctx context.Context, from, to time.Time) ([]models.PaymentReminder, error)
}

// Mailer sends user notifications
type Mailer interface {
	SendPaymentReminder(to, username string, p models.Payment, now time.Time) error
	SendPasswordReset(to, username, token string) error
}

// RateSource provides the reference interest rate
type RateSource interface {
	GetKeyRate(ctx context.Context) (cbr.KeyRate, error)
}

// Service handles business logic
type Service struct {
	store  Store
	log    *logrus.Logger
	config *config.Config
	mailer Mailer
	rates  RateSource
	now    func() time.Time
}

// NewService initializes a new service. mailer may be nil when SMTP is not configured.
func NewService(store Store, log *logrus.Logger, cfg *config.Config, mailer Mailer, rates RateSource) *Service {
	return &Service{
		store:  store,
		log:    log,
		config: cfg,
		mailer: mailer,
		rates:  rates,
		now:    time.Now,
	}
}

// ReferenceRate returns the central bank key rate
func (s *Service) ReferenceRate(ctx context.Context) (cbr.KeyRate, error) {
	return s.rates.GetKeyRate(ctx)
}
