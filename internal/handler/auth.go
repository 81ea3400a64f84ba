package handler

import (
	"net/http"

	"github.com/Dan9191/finance-planner/internal/middleware"
	"github.com/Dan9191/finance-planner/internal/models"
	"github.com/Dan9191/finance-planner/internal/validation"
)

type authResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Register handles user registration. The new user is logged in right away.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		h.handleError(w, r, err, "register")
		return
	}
	creds, err := validation.Register(body)
	if err != nil {
		h.handleError(w, r, err, "register")
		return
	}
	if _, err := h.svc.Register(r.Context(), creds.Email, creds.Password, creds.Name); err != nil {
		h.handleError(w, r, err, "register")
		return
	}
	token, user, err := h.svc.Login(r.Context(), creds.Email, creds.Password)
	if err != nil {
		h.handleError(w, r, err, "register")
		return
	}
	h.success(w, http.StatusCreated, authResponse{User: user, Token: token}, "registration successful")
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		h.handleError(w, r, err, "log in")
		return
	}
	creds, err := validation.Login(body)
	if err != nil {
		h.handleError(w, r, err, "log in")
		return
	}
	token, user, err := h.svc.Login(r.Context(), creds.Email, creds.Password)
	if err != nil {
		h.handleError(w, r, err, "log in")
		return
	}
	h.success(w, http.StatusOK, authResponse{User: user, Token: token}, "login successful")
}

// Logout ends the current session
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context(), middleware.Token(r.Context())); err != nil {
		h.handleError(w, r, err, "log out")
		return
	}
	h.success(w, http.StatusOK, nil, "logged out")
}

// Me returns the authenticated user
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Me(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		h.handleError(w, r, err, "load user")
		return
	}
	h.success(w, http.StatusOK, map[string]interface{}{"user": user}, "")
}

// ForgotPassword issues a reset token. The response is the same whether or not
// the email is registered.
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		h.handleError(w, r, err, "request password reset")
		return
	}
	email, err := validation.ForgotPassword(body)
	if err != nil {
		h.handleError(w, r, err, "request password reset")
		return
	}
	token, err := h.svc.ForgotPassword(r.Context(), email)
	if err != nil {
		h.handleError(w, r, err, "request password reset")
		return
	}

	const message = "if the account exists, reset instructions have been sent"
	if token == "" {
		h.success(w, http.StatusOK, nil, message)
		return
	}
	h.success(w, http.StatusOK, map[string]string{"resetToken": token}, message)
}

// ResetPassword sets a new password from a reset token
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		h.handleError(w, r, err, "reset password")
		return
	}
	in, err := validation.ResetPassword(body)
	if err != nil {
		h.handleError(w, r, err, "reset password")
		return
	}
	if err := h.svc.ResetPassword(r.Context(), in.Token, in.Password); err != nil {
		h.handleError(w, r, err, "reset password")
		return
	}
	h.success(w, http.StatusOK, nil, "password has been reset")
}
