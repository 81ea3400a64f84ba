package repository

import (
	"context"
	"fmt"

	"github.com/Dan9191/finance-planner/internal/models"
	"github.com/google/uuid"
)

const accountColumns = `id, user_id, name, type, balance, interest_rate, interest_frequency,
	target_amount, maturity_date, created_at, updated_at`

func scanAccount(row scanner) (models.SavingsAccount, error) {
	var a models.SavingsAccount
	err := row.Scan(&a.ID, &a.UserID, &a.Name, &a.Type, &a.Balance, &a.InterestRate, &a.InterestFrequency,
		&a.TargetAmount, &a.MaturityDate, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// ListAccounts returns the user's savings accounts, newest first
func (r *Repository) ListAccounts(ctx context.Context, userID string) ([]models.SavingsAccount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+accountColumns+` FROM finance.savings_accounts
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []models.SavingsAccount{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// CreateAccount creates a new savings account
func (r *Repository) CreateAccount(ctx context.Context, account *models.SavingsAccount) error {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	query := `
		INSERT INTO finance.savings_accounts (id, user_id, name, type, balance, interest_rate,
			interest_frequency, target_amount, maturity_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, account.ID, account.UserID, account.Name, account.Type, account.Balance,
		account.InterestRate, account.InterestFrequency, account.TargetAmount, account.MaturityDate).
		Scan(&account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// UpdateAccount overwrites an account owned by userID
func (r *Repository) UpdateAccount(ctx context.Context, userID, id string, in models.SavingsAccountInput) (*models.SavingsAccount, error) {
	query := `
		UPDATE finance.savings_accounts
		SET name = $3, type = $4, balance = $5, interest_rate = $6, interest_frequency = $7,
			target_amount = $8, maturity_date = $9, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2
		RETURNING ` + accountColumns
	a, err := scanAccount(r.db.QueryRowContext(ctx, query, id, userID, in.Name, in.Type, in.Balance,
		in.InterestRate, in.InterestFrequency, in.TargetAmount, in.MaturityDate))
	if err != nil {
		return nil, notFound("account", err)
	}
	return &a, nil
}

// DeleteAccount removes an account owned by userID
func (r *Repository) DeleteAccount(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM finance.savings_accounts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return checkAffected(res, "account")
}
