package handler

import (
	"net/http"

	"github.com/Dan9191/finance-planner/internal/middleware"
	"github.com/Dan9191/finance-planner/internal/validation"
	"github.com/gorilla/mux"
)

func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.svc.ListPlans(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		h.handleError(w, r, err, "list plans")
		return
	}
	h.success(w, http.StatusOK, map[string]interface{}{"plans": plans}, "")
}

func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		h.handleError(w, r, err, "create plan")
		return
	}
	in, err := validation.BudgetPlan(body)
	if err != nil {
		h.handleError(w, r, err, "create plan")
		return
	}
	plan, err := h.svc.CreatePlan(r.Context(), middleware.UserID(r.Context()), in)
	if err != nil {
		h.handleError(w, r, err, "create plan")
		return
	}
	h.success(w, http.StatusCreated, map[string]interface{}{"plan": plan}, "budget plan created")
}

func (h *Handler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		h.handleError(w, r, err, "update plan")
		return
	}
	in, err := validation.BudgetPlan(body)
	if err != nil {
		h.handleError(w, r, err, "update plan")
		return
	}
	plan, err := h.svc.UpdatePlan(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["id"], in)
	if err != nil {
		h.handleError(w, r, err, "update plan")
		return
	}
	h.success(w, http.StatusOK, map[string]interface{}{"plan": plan}, "budget plan updated")
}

func (h *Handler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeletePlan(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["id"]); err != nil {
		h.handleError(w, r, err, "delete plan")
		return
	}
	h.success(w, http.StatusOK, nil, "budget plan deleted")
}
