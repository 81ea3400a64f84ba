package service

import (
	"context"
	"time"

	"github.com/Dan9191/finance-planner/internal/models"
	"github.com/Dan9191/finance-planner/internal/recurrence"
	"github.com/google/uuid"
)

// ListPayments returns the user's payments, optionally limited to a date range
func (s *Service) ListPayments(ctx context.Context, userID string, from, to *time.Time) ([]models.Payment, error) {
	return s.store.ListPayments(ctx, userID, from, to)
}

// CreatePayment stores a payment. For a recurring payment the following occurrences
// are generated from the same rule and stored together with it; they are returned
// separately from the base record.
func (s *Service) CreatePayment(ctx context.Context, userID string, in models.NewPaymentInput) (*models.Payment, []models.Payment, error) {
	base := in.Payment(userID)
	base.ID = uuid.NewString()

	var generated []models.Payment
	if sched, ok := in.Schedule.(models.RecurringSchedule); ok {
		generated = recurrence.Expand(base, recurrence.RuleFromSchedule(sched), s.now())
	}

	if err := s.store.CreatePayments(ctx, &base, generated); err != nil {
		return nil, nil, err
	}

	if len(generated) > 0 {
		s.log.Infof("Recurring payment created for user %s: %s, %d occurrences generated", userID, base.Category, len(generated))
	} else {
		s.log.Infof("Payment created for user %s: %s", userID, base.Category)
	}
	return &base, generated, nil
}

// UpdatePayment applies a partial update to a payment owned by the user
func (s *Service) UpdatePayment(ctx context.Context, userID, id string, upd models.PaymentUpdate) (*models.Payment, error) {
	p, err := s.store.GetPayment(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	upd.Apply(p)
	if err := s.store.UpdatePayment(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeletePayment removes a single payment owned by the user. Occurrences generated
// from it stay and lose their parent link.
func (s *Service) DeletePayment(ctx context.Context, userID, id string) error {
	if err := s.store.DeletePayment(ctx, userID, id); err != nil {
		return err
	}
	s.log.Infof("Payment %s deleted for user %s", id, userID)
	return nil
}
