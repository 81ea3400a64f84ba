package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/Dan9191/finance-planner/internal/integrations/cbr"
	"github.com/Dan9191/finance-planner/internal/models"
	"github.com/Dan9191/finance-planner/internal/repository"
	"github.com/Dan9191/finance-planner/internal/service"
	"github.com/Dan9191/finance-planner/internal/validation"
	"github.com/sirupsen/logrus"
)

const maxBodySize = 1 << 20

// Service is the business logic the handlers call. *service.Service implements it.
type Service interface {
	Register(ctx context.Context, email, password, name string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, userID string) (*models.User, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, password string) error

	ListPlans(ctx context.Context, userID string) ([]models.BudgetPlan, error)
	CreatePlan(ctx context.Context, userID string, in models.BudgetPlanInput) (*models.BudgetPlan, error)
	UpdatePlan(ctx context.Context, userID, id string, in models.BudgetPlanInput) (*models.BudgetPlan, error)
	DeletePlan(ctx context.Context, userID, id string) error

	ListAccounts(ctx context.Context, userID string) ([]models.SavingsAccount, error)
	CreateAccount(ctx context.Context, userID string, in models.SavingsAccountInput) (*models.SavingsAccount, error)
	UpdateAccount(ctx context.Context, userID, id string, in models.SavingsAccountInput) (*models.SavingsAccount, error)
	DeleteAccount(ctx context.Context, userID, id string) error

	ListPayments(ctx context.Context, userID string, from, to *time.Time) ([]models.Payment, error)
	CreatePayment(ctx context.Context, userID string, in models.NewPaymentInput) (*models.Payment, []models.Payment, error)
	UpdatePayment(ctx context.Context, userID, id string, upd models.PaymentUpdate) (*models.Payment, error)
	DeletePayment(ctx context.Context, userID, id string) error

	Summary(ctx context.Context, userID string) (*models.DashboardSummary, error)
	Analytics(ctx context.Context, userID string, months int) (*models.Projection, error)
	ReferenceRate(ctx context.Context) (cbr.KeyRate, error)
}

type Handler struct {
	svc Service
	log *logrus.Logger
}

func NewHandler(svc Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}

func (h *Handler) success(w http.ResponseWriter, status int, data interface{}, message string) {
	h.writeJSON(w, status, envelope{Success: true, Data: data, Message: message})
}

func (h *Handler) fail(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, envelope{Success: false, Error: message})
}

// handleError maps service and repository errors to HTTP statuses
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error, action string) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		h.fail(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		h.fail(w, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, service.ErrInvalidToken):
		h.fail(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		h.fail(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrEmailTaken):
		h.fail(w, http.StatusConflict, err.Error())
	default:
		h.log.WithFields(logrus.Fields{"method": r.Method, "path": r.URL.Path}).Errorf("Failed to %s: %v", action, err)
		h.fail(w, http.StatusInternalServerError, "failed to "+action)
	}
}

func readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return nil, &validation.Error{Message: "failed to read request body"}
	}
	return body, nil
}
