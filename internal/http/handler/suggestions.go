package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wave/internal/identity"
	"wave/internal/suggestion"
)

type SuggestionService interface {
	Create(ctx context.Context, creatorID string, in suggestion.CreateInput) (suggestion.Suggestion, error)
	ListForGroup(ctx context.Context, actorID, groupID string) ([]suggestion.Suggestion, error)
}

type SuggestionHandler struct {
	Svc SuggestionService
}

type createSuggestionReq struct {
	GroupID   string              `json:"group_id" validate:"required"`
	Prompt    string              `json:"prompt" validate:"required"`
	Locations []suggestion.LatLng `json:"locations"`
}

func (h *SuggestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, _ := identity.FromContext(r.Context())

	var req createSuggestionReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sg, err := h.Svc.Create(r.Context(), id.UserID, suggestion.CreateInput{
		GroupID:   req.GroupID,
		Prompt:    req.Prompt,
		Locations: req.Locations,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "Suggestion created", "suggestion": sg})
}

func (h *SuggestionHandler) ListForGroup(w http.ResponseWriter, r *http.Request) {
	id, _ := identity.FromContext(r.Context())
	groupID := chi.URLParam(r, "group_id")

	suggestions, err := h.Svc.ListForGroup(r.Context(), id.UserID, groupID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestions)
}
