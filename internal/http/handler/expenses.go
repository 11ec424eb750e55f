package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wave/internal/expense"
	"wave/internal/identity"
)

type ExpenseService interface {
	Create(ctx context.Context, creatorID string, in expense.CreateInput) (expense.Expense, error)
	ListForGroup(ctx context.Context, actorID, groupID string) ([]expense.Expense, error)
}

type ExpenseHandler struct {
	Svc ExpenseService
}

type createExpenseReq struct {
	GroupID     string          `json:"group_id" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Amount      float64         `json:"amount" validate:"gt=0"`
	Split       json.RawMessage `json:"split"`
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, _ := identity.FromContext(r.Context())

	var req createExpenseReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	e, err := h.Svc.Create(r.Context(), id.UserID, expense.CreateInput{
		GroupID:     req.GroupID,
		Description: req.Description,
		Amount:      req.Amount,
		Split:       req.Split,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "Expense added", "expense": e})
}

func (h *ExpenseHandler) ListForGroup(w http.ResponseWriter, r *http.Request) {
	id, _ := identity.FromContext(r.Context())
	groupID := chi.URLParam(r, "group_id")

	expenses, err := h.Svc.ListForGroup(r.Context(), id.UserID, groupID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}
