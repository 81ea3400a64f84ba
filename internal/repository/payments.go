package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Dan9191/finance-planner/internal/models"
	"github.com/google/uuid"
)

const paymentColumns = `id, user_id, budget_plan_id, parent_id, category, amount, payment_date, type,
	frequency, day_of_week, day_of_month, month, custom_dates, is_paid, created_at, updated_at`

func scanPayment(row scanner) (models.Payment, error) {
	var p models.Payment
	var customDates sql.NullString
	err := row.Scan(&p.ID, &p.UserID, &p.BudgetPlanID, &p.ParentID, &p.Category, &p.Amount, &p.PaymentDate, &p.Type,
		&p.Frequency, &p.DayOfWeek, &p.DayOfMonth, &p.Month, &customDates, &p.IsPaid, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return p, err
	}
	return p, setCustomDates(&p, customDates)
}

// setCustomDates decodes the custom_dates column into p. NULL leaves p untouched.
func setCustomDates(p *models.Payment, raw sql.NullString) error {
	if !raw.Valid {
		return nil
	}
	dates, err := models.DecodeCustomDates(raw.String)
	if err != nil {
		return fmt.Errorf("failed to decode custom dates of payment %s: %w", p.ID, err)
	}
	p.CustomDates = dates
	return nil
}

func collectPayments(rows *sql.Rows) ([]models.Payment, error) {
	defer rows.Close()
	payments := []models.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// ListPayments returns the user's payments ordered by date. A nil bound is open.
func (r *Repository) ListPayments(ctx context.Context, userID string, from, to *time.Time) ([]models.Payment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+paymentColumns+` FROM finance.payments
		WHERE user_id = $1
			AND ($2::timestamptz IS NULL OR payment_date >= $2)
			AND ($3::timestamptz IS NULL OR payment_date <= $3)
		ORDER BY payment_date ASC`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return collectPayments(rows)
}

// ListUnpaidPayments returns the user's unpaid payments dated within [from, to]
func (r *Repository) ListUnpaidPayments(ctx context.Context, userID string, from, to time.Time) ([]models.Payment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+paymentColumns+` FROM finance.payments
		WHERE user_id = $1 AND NOT is_paid AND payment_date >= $2 AND payment_date <= $3
		ORDER BY payment_date ASC`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list unpaid payments: %w", err)
	}
	return collectPayments(rows)
}

// GetPayment returns a payment owned by userID
func (r *Repository) GetPayment(ctx context.Context, userID, id string) (*models.Payment, error) {
	p, err := scanPayment(r.db.QueryRowContext(ctx, `
		SELECT `+paymentColumns+` FROM finance.payments
		WHERE id = $1 AND user_id = $2`, id, userID))
	if err != nil {
		return nil, notFound("payment", err)
	}
	return &p, nil
}

// CreatePayments inserts a base payment and its generated occurrences in one
// transaction. Either all rows are written or none.
func (r *Repository) CreatePayments(ctx context.Context, base *models.Payment, occurrences []models.Payment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO finance.payments (id, user_id, budget_plan_id, parent_id, category, amount, payment_date, type,
			frequency, day_of_week, day_of_month, month, custom_dates, is_paid, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`)
	if err != nil {
		return fmt.Errorf("failed to prepare payment insert: %w", err)
	}
	defer stmt.Close()

	if base.ID == "" {
		base.ID = uuid.NewString()
	}
	if err := insertPayment(ctx, stmt, base); err != nil {
		return err
	}
	for i := range occurrences {
		occ := &occurrences[i]
		if occ.ID == "" {
			occ.ID = uuid.NewString()
		}
		if occ.ParentID == nil {
			occ.ParentID = &base.ID
		}
		if err := insertPayment(ctx, stmt, occ); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit payments: %w", err)
	}
	return nil
}

func insertPayment(ctx context.Context, stmt *sql.Stmt, p *models.Payment) error {
	var customDates *string
	if len(p.CustomDates) > 0 {
		s, err := models.EncodeCustomDates(p.CustomDates)
		if err != nil {
			return err
		}
		customDates = &s
	}
	err := stmt.QueryRowContext(ctx, p.ID, p.UserID, p.BudgetPlanID, p.ParentID, p.Category, p.Amount, p.PaymentDate, p.Type,
		p.Frequency, p.DayOfWeek, p.DayOfMonth, p.Month, customDates, p.IsPaid).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// UpdatePayment saves the editable fields of a payment owned by p.UserID
func (r *Repository) UpdatePayment(ctx context.Context, p *models.Payment) error {
	err := r.db.QueryRowContext(ctx, `
		UPDATE finance.payments
		SET category = $3, amount = $4, payment_date = $5, is_paid = $6, budget_plan_id = $7,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`, p.ID, p.UserID, p.Category, p.Amount, p.PaymentDate, p.IsPaid, p.BudgetPlanID).
		Scan(&p.UpdatedAt)
	if err != nil {
		return notFound("payment", err)
	}
	return nil
}

// DeletePayment removes a payment owned by userID
func (r *Repository) DeletePayment(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM finance.payments WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return checkAffected(res, "payment")
}

// DueReminders returns unpaid payments dated within [from, to] for all users,
// joined with the owner's email
func (r *Repository) DueReminders(ctx context.Context, from, to time.Time) ([]models.PaymentReminder, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.user_id, p.budget_plan_id, p.parent_id, p.category, p.amount, p.payment_date, p.type,
			p.frequency, p.day_of_week, p.day_of_month, p.month, p.custom_dates, p.is_paid, p.created_at, p.updated_at,
			u.email, u.name
		FROM finance.payments p
		JOIN finance.users u ON u.id = p.user_id
		WHERE NOT p.is_paid AND p.payment_date >= $1 AND p.payment_date <= $2
		ORDER BY p.payment_date ASC`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list due payments: %w", err)
	}
	defer rows.Close()

	reminders := []models.PaymentReminder{}
	for rows.Next() {
		var rem models.PaymentReminder
		var customDates sql.NullString
		p := &rem.Payment
		if err := rows.Scan(&p.ID, &p.UserID, &p.BudgetPlanID, &p.ParentID, &p.Category, &p.Amount, &p.PaymentDate, &p.Type,
			&p.Frequency, &p.DayOfWeek, &p.DayOfMonth, &p.Month, &customDates, &p.IsPaid, &p.CreatedAt, &p.UpdatedAt,
			&rem.Email, &rem.UserName); err != nil {
			return nil, fmt.Errorf("failed to scan due payment: %w", err)
		}
		if err := setCustomDates(p, customDates); err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list due payments: %w", err)
	}
	return reminders, nil
}
