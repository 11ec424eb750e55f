package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"wave/internal/identity"
	"wave/internal/user"
)

type UserService interface {
	Create(ctx context.Context, userID, email string, in user.CreateInput) (user.User, bool, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	Update(ctx context.Context, userID string, in user.UpdateInput) (user.User, error)
	BumpStreak(ctx context.Context, userID string) (user.User, error)
	Search(ctx context.Context, actorID, q string) ([]user.Profile, error)
}

type UserHandler struct {
	Svc UserService
}

type createUserReq struct {
	Username  string   `json:"username"`
	AvatarURL string   `json:"avatar_url"`
	Bio       string   `json:"bio"`
	FunnyTags []string `json:"funny_tags"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, _ := identity.FromContext(r.Context())

	var req createUserReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, created, err := h.Svc.Create(r.Context(), id.UserID, id.Email, user.CreateInput{
		Username:  strings.TrimSpace(req.Username),
		AvatarURL: req.AvatarURL,
		Bio:       req.Bio,
		FunnyTags: req.FunnyTags,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if !created {
		writeJSON(w, http.StatusOK, map[string]any{"message": "User already exists", "user": u})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "User created", "user": u})
}

func (h *UserHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	u, err := h.Svc.GetByEmail(r.Context(), email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

type updateUserReq struct {
	Bio       *string   `json:"bio"`
	AvatarURL *string   `json:"avatar_url"`
	FunnyTags *[]string `json:"funny_tags"`
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := identity.FromContext(r.Context())

	var req updateUserReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.Svc.Update(r.Context(), id.UserID, user.UpdateInput{
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
		FunnyTags: req.FunnyTags,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "User updated", "user": u})
}

func (h *UserHandler) BumpStreak(w http.ResponseWriter, r *http.Request) {
	id, _ := identity.FromContext(r.Context())

	u, err := h.Svc.BumpStreak(r.Context(), id.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Streak updated", "user": u})
}

func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	id, _ := identity.FromContext(r.Context())

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, http.StatusBadRequest, "search query 'q' is required")
		return
	}

	profiles, err := h.Svc.Search(r.Context(), id.UserID, q)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}
