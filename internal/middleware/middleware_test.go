package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

type stubValidator map[string]string

func (s stubValidator) ValidateSession(ctx context.Context, token string) (string, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	return "", errors.New("invalid token")
}

func protected(t *testing.T) http.Handler {
	t.Helper()
	return AuthMiddleware(stubValidator{"good": "user-1"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(UserID(r.Context()) + ":" + Token(r.Context())))
	}))
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/plans", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	protected(t).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "user-1:good" {
		t.Fatalf("body = %q, want user-1:good", got)
	}
}

func TestAuthMiddlewareRejects(t *testing.T) {
	headers := []string{"", "good", "Basic good", "Bearer ", "Bearer bad"}
	for _, h := range headers {
		req := httptest.NewRequest(http.MethodGet, "/plans", nil)
		if h != "" {
			req.Header.Set("Authorization", h)
		}
		rec := httptest.NewRecorder()
		protected(t).ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: status = %d, want 401", h, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"success":false`) {
			t.Fatalf("header %q: body = %s", h, rec.Body.String())
		}
	}
}

func TestUserIDOutsideMiddleware(t *testing.T) {
	if id := UserID(context.Background()); id != "" {
		t.Fatalf("UserID = %q, want empty", id)
	}
	if id := UserID(WithUserID(context.Background(), "u")); id != "u" {
		t.Fatalf("UserID = %q, want u", id)
	}
}

func TestLoggingMiddlewareRecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	h := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want 418", rec.Code)
	}
	out := buf.String()
	if !strings.Contains(out, `"status":418`) || !strings.Contains(out, `"path":"/auth/login"`) {
		t.Fatalf("log = %s", out)
	}
}
