package service

import (
	"context"

	"github.com/Dan9191/finance-planner/internal/models"
)

// ListAccounts returns the user's savings accounts
func (s *Service) ListAccounts(ctx context.Context, userID string) ([]models.SavingsAccount, error) {
	return s.store.ListAccounts(ctx, userID)
}

// CreateAccount creates a savings account for the user
func (s *Service) CreateAccount(ctx context.Context, userID string, in models.SavingsAccountInput) (*models.SavingsAccount, error) {
	in = in.Normalize()
	account := &models.SavingsAccount{
		UserID:            userID,
		Name:              in.Name,
		Type:              in.Type,
		Balance:           in.Balance,
		InterestRate:      in.InterestRate,
		InterestFrequency: in.InterestFrequency,
		TargetAmount:      in.TargetAmount,
		MaturityDate:      in.MaturityDate,
	}
	if err := s.store.CreateAccount(ctx, account); err != nil {
		return nil, err
	}
	s.log.Infof("Savings account created for user %s: %s (%s)", userID, account.Name, account.Type)
	return account, nil
}

// UpdateAccount edits an account owned by the user
func (s *Service) UpdateAccount(ctx context.Context, userID, id string, in models.SavingsAccountInput) (*models.SavingsAccount, error) {
	return s.store.UpdateAccount(ctx, userID, id, in.Normalize())
}

// DeleteAccount removes an account owned by the user
func (s *Service) DeleteAccount(ctx context.Context, userID, id string) error {
	if err := s.store.DeleteAccount(ctx, userID, id); err != nil {
		return err
	}
	s.log.Infof("Savings account %s deleted for user %s", id, userID)
	return nil
}
