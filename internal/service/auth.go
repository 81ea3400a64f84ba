package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dan9191/finance-planner/internal/models"
	"github.com/Dan9191/finance-planner/internal/repository"
	"github.com/Dan9191/finance-planner/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	purposeSession = "session"
	purposeReset   = "reset"
	resetTokenTTL  = time.Hour
)

// Claims are carried by every issued token
type Claims struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// Register creates a new user with hashed password
func (s *Service) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hashedPassword),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user, stores a session and returns its token
func (s *Service) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	expiresAt := s.now().Add(s.config.JWTTTL)
	tokenString, err := s.signToken(user, purposeSession, expiresAt)
	if err != nil {
		return "", nil, err
	}

	session := &models.Session{
		UserID:    user.ID,
		TokenHash: utils.HashToken(tokenString, s.config.HMACSecret),
		ExpiresAt: expiresAt,
	}
	if err := s.store.CreateSession(ctx, session); err != nil {
		return "", nil, err
	}

	s.log.Infof("User logged in: %s", user.Email)
	return tokenString, user, nil
}

// Logout ends the session of token
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.store.DeleteSession(ctx, utils.HashToken(token, s.config.HMACSecret))
}

// ValidateSession checks the token signature and that its session is still active.
// It returns the user id.
func (s *Service) ValidateSession(ctx context.Context, token string) (string, error) {
	claims, err := s.parseToken(token, purposeSession)
	if err != nil {
		return "", err
	}

	session, err := s.store.FindSession(ctx, utils.HashToken(token, s.config.HMACSecret))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}
	if !utils.TokenMatches(token, session.TokenHash, s.config.HMACSecret) {
		return "", ErrInvalidToken
	}
	if session.ExpiresAt.Before(s.now()) || session.UserID != claims.Subject {
		return "", ErrInvalidToken
	}
	return session.UserID, nil
}

// Me returns the authenticated user
func (s *Service) Me(ctx context.Context, userID string) (*models.User, error) {
	return s.store.FindUserByID(ctx, userID)
}

// ForgotPassword issues a reset token for the email. The token is mailed when a
// mailer is configured and returned otherwise. Unknown emails yield an empty token
// and no error so callers cannot probe for accounts.
func (s *Service) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	token, err := s.signToken(user, purposeReset, s.now().Add(resetTokenTTL))
	if err != nil {
		return "", err
	}

	if s.mailer != nil {
		if err := s.mailer.SendPasswordReset(user.Email, user.Name, token); err != nil {
			return "", err
		}
		s.log.Infof("Password reset requested: %s", user.Email)
		return "", nil
	}
	s.log.Warnf("Mail disabled, returning reset token for %s in response", user.Email)
	return token, nil
}

// ResetPassword sets a new password using a reset token
func (s *Service) ResetPassword(ctx context.Context, token, password string) error {
	claims, err := s.parseToken(token, purposeReset)
	if err != nil {
		return err
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.store.UpdatePassword(ctx, claims.Subject, string(hashedPassword)); err != nil {
		return err
	}
	s.log.Infof("Password reset for user %s", claims.Subject)
	return nil
}

// CleanupSessions removes expired sessions
func (s *Service) CleanupSessions(ctx context.Context) (int64, error) {
	n, err := s.store.DeleteExpiredSessions(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Infof("Removed %d expired sessions", n)
	}
	return n, nil
}

func (s *Service) signToken(user *models.User, purpose string, expiresAt time.Time) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email:   user.Email,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

func (s *Service) parseToken(tokenString, purpose string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || claims.Purpose != purpose || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
