package handler

import (
	"net/http"
	"strconv"

	"github.com/Dan9191/finance-planner/internal/middleware"
	"github.com/Dan9191/finance-planner/internal/projection"
)

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		h.handleError(w, r, err, "load dashboard summary")
		return
	}
	h.success(w, http.StatusOK, summary, "")
}

// Analytics returns the expense, savings and interest projections. months must be
// 6, 12 or 24 and defaults to 12.
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	months := projection.DefaultHorizon
	if raw := r.URL.Query().Get("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || !projection.ValidHorizon(n) {
			h.fail(w, http.StatusBadRequest, "months must be one of 6, 12, 24")
			return
		}
		months = n
	}

	p, err := h.svc.Analytics(r.Context(), middleware.UserID(r.Context()), months)
	if err != nil {
		h.handleError(w, r, err, "build analytics")
		return
	}
	h.success(w, http.StatusOK, p, "")
}

// ReferenceRate returns the central bank key rate
func (h *Handler) ReferenceRate(w http.ResponseWriter, r *http.Request) {
	rate, err := h.svc.ReferenceRate(r.Context())
	if err != nil {
		h.handleError(w, r, err, "get reference rate")
		return
	}
	h.success(w, http.StatusOK, rate, "")
}
