package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wave/internal/identity"
	"wave/internal/poll"
)

type PollService interface {
	Create(ctx context.Context, creatorID string, in poll.CreateInput) (poll.Poll, error)
	List(ctx context.Context, actorID, groupID string) ([]poll.Poll, error)
	Vote(ctx context.Context, voterID, pollID, option string) (poll.Poll, error)
}

type PollHandler struct {
	Svc PollService
}

type createPollReq struct {
	GroupID  string   `json:"group_id"`
	Question string   `json:"question" validate:"required"`
	Options  []string `json:"options" validate:"min=2,dive,required"`
}

func (h *PollHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, _ := identity.FromContext(r.Context())

	var req createPollReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.Svc.Create(r.Context(), id.UserID, poll.CreateInput{
		GroupID:  req.GroupID,
		Question: req.Question,
		Options:  req.Options,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "Poll created", "poll": p})
}

func (h *PollHandler) List(w http.ResponseWriter, r *http.Request) {
	id, _ := identity.FromContext(r.Context())

	polls, err := h.Svc.List(r.Context(), id.UserID, r.URL.Query().Get("group_id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, polls)
}

type voteReq struct {
	Option string `json:"option" validate:"required"`
}

func (h *PollHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, _ := identity.FromContext(r.Context())
	pollID := chi.URLParam(r, "id")

	var req voteReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.Svc.Vote(r.Context(), id.UserID, pollID, req.Option)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Vote updated", "poll": p})
}
