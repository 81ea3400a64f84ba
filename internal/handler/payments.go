package handler

import (
	"net/http"
	"time"

	"github.com/Dan9191/finance-planner/internal/middleware"
	"github.com/Dan9191/finance-planner/internal/models"
	"github.com/Dan9191/finance-planner/internal/validation"
	"github.com/gorilla/mux"
)

// ListPayments returns the user's payments. The date filter applies only when both
// startDate and endDate are given.
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	var from, to *time.Time
	q := r.URL.Query()
	if start, end := q.Get("startDate"), q.Get("endDate"); start != "" && end != "" {
		s, err := models.ParseDate(start)
		if err != nil {
			h.fail(w, http.StatusBadRequest, "startDate: "+err.Error())
			return
		}
		e, err := models.ParseDate(end)
		if err != nil {
			h.fail(w, http.StatusBadRequest, "endDate: "+err.Error())
			return
		}
		from, to = &s, &e
	}

	payments, err := h.svc.ListPayments(r.Context(), middleware.UserID(r.Context()), from, to)
	if err != nil {
		h.handleError(w, r, err, "list payments")
		return
	}
	h.success(w, http.StatusOK, map[string]interface{}{"payments": payments}, "")
}

func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		h.handleError(w, r, err, "create payment")
		return
	}
	in, err := validation.Payment(body)
	if err != nil {
		h.handleError(w, r, err, "create payment")
		return
	}
	payment, generated, err := h.svc.CreatePayment(r.Context(), middleware.UserID(r.Context()), in)
	if err != nil {
		h.handleError(w, r, err, "create payment")
		return
	}

	if _, ok := in.Schedule.(models.RecurringSchedule); ok {
		h.success(w, http.StatusCreated, map[string]interface{}{
			"payment":           payment,
			"generatedPayments": generated,
		}, "recurring payment created")
		return
	}
	h.success(w, http.StatusCreated, map[string]interface{}{"payment": payment}, "payment created")
}

func (h *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		h.handleError(w, r, err, "update payment")
		return
	}
	upd, err := validation.PaymentUpdate(body)
	if err != nil {
		h.handleError(w, r, err, "update payment")
		return
	}
	payment, err := h.svc.UpdatePayment(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["id"], upd)
	if err != nil {
		h.handleError(w, r, err, "update payment")
		return
	}
	h.success(w, http.StatusOK, map[string]interface{}{"payment": payment}, "payment updated")
}

func (h *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeletePayment(r.Context(), middleware.UserID(r.Context()), mux.Vars(r)["id"]); err != nil {
		h.handleError(w, r, err, "delete payment")
		return
	}
	h.success(w, http.StatusOK, nil, "payment deleted")
}
