package handler

import (
	"net/http"

	"github.com/Dan9191/finance-planner/internal/middleware"
	"github.com/Dan9191/finance-planner/internal/validation"
	"github.com/gorilla/mux"
)

func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.ListAccounts(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		h.handleError(w, r, err, "list savings accounts")
		return
	}
	h.success(w, http.StatusOK, map[string]interface{}{"accounts": accounts}, "")
}

func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		h.handleError(w, r, err, "create savings account")
		return
	}
	in, err := validation.SavingsAccount(body)
	if err != nil {
		h.handleError(w, r, err, "create savings account")
		return
	}
	account, err := h.svc.CreateAccount(r.Context(), middleware.UserID(r.Context()), in)
	if err != nil {
		h.handleError(w, r, err, "create savings account")
		return
	}
	h.success(w, http.StatusCreated, map[string]interface{}{"account": account}, "savings account created")
}

func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		h.handleError(w, r, err, "update savings account")
		return
	}
	in, err := validation.SavingsAccount(body)
	if err != nil {
		h.handleError(w, r, err, "update savings account")
		return
	}
	account, err := h.svc.UpdateAccount(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["id"], in)
	if err != nil {
		h.handleError(w, r, err, "update savings account")
		return
	}
	h.success(w, http.StatusOK, map[string]interface{}{"account": account}, "savings account updated")
}

func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAccount(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["id"]); err != nil {
		h.handleError(w, r, err, "delete savings account")
		return
	}
	h.success(w, http.StatusOK, nil, "savings account deleted")
}
