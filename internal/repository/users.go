package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Dan9191/finance-planner/internal/models"
	"github.com/google/uuid"
)

const userColumns = `id, email, name, currency, password_hash, created_at, updated_at`

func scanUser(row scanner) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.Currency, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	return user, err
}

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Currency == "" {
		user.Currency = "PLN"
	}
	query := `
		INSERT INTO finance.users (id, email, name, currency, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, user.ID, user.Email, user.Name, user.Currency, user.PasswordHash).
		Scan(&user.CreatedAt, &user.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("user %w", ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM finance.users WHERE email = $1`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, notFound("user", err)
	}
	return user, nil
}

// FindUserByID retrieves a user by id
func (r *Repository) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM finance.users WHERE id = $1`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound("user", err)
	}
	return user, nil
}

// UpdatePassword stores a new password hash
func (r *Repository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE finance.users SET password_hash = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`, userID, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return checkAffected(res, "user")
}

// CreateSession stores a login session
func (r *Repository) CreateSession(ctx context.Context, session *models.Session) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	query := `
		INSERT INTO finance.sessions (id, user_id, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query, session.ID, session.UserID, session.TokenHash, session.ExpiresAt).
		Scan(&session.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// FindSession looks a session up by token hash
func (r *Repository) FindSession(ctx context.Context, tokenHash string) (*models.Session, error) {
	s := &models.Session{}
	query := `
		SELECT id, user_id, token_hash, expires_at, created_at
		FROM finance.sessions
		WHERE token_hash = $1`
	err := r.db.QueryRowContext(ctx, query, tokenHash).
		Scan(&s.ID, &s.UserID, &s.TokenHash, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		return nil, notFound("session", err)
	}
	return s, nil
}

// DeleteSession removes a session by token hash. Deleting a missing session is not an error.
func (r *Repository) DeleteSession(ctx context.Context, tokenHash string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM finance.sessions WHERE token_hash = $1`, tokenHash); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpiredSessions removes sessions that expired before now and returns how many
func (r *Repository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM finance.sessions WHERE expires_at < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}
