package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wave/internal/group"
	"wave/internal/identity"
)

type GroupService interface {
	Create(ctx context.Context, creatorID string, in group.CreateInput) (group.Group, error)
	ListForUser(ctx context.Context, userID string) ([]group.Group, error)
	AddMember(ctx context.Context, actorID, groupID, userID string) error
}

type GroupHandler struct {
	Svc GroupService
}

type createGroupReq struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
}

func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, _ := identity.FromContext(r.Context())

	var req createGroupReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	g, err := h.Svc.Create(r.Context(), id.UserID, group.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Members:     req.Members,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "Group created", "group": g})
}

func (h *GroupHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	id, _ := identity.FromContext(r.Context())

	groups, err := h.Svc.ListForUser(r.Context(), id.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

type addMemberReq struct {
	UserID string `json:"user_id" validate:"required"`
}

func (h *GroupHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	id, _ := identity.FromContext(r.Context())
	groupID := chi.URLParam(r, "id")

	var req addMemberReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Svc.AddMember(r.Context(), id.UserID, groupID, req.UserID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Member added"})
}
