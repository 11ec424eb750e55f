package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"wave/internal/identity"
	"wave/internal/message"
)

type MessageService interface {
	Send(ctx context.Context, senderID string, in message.SendInput) (message.Message, error)
	List(ctx context.Context, actorID string, t message.Target) ([]message.Message, error)
	Search(ctx context.Context, actorID string, t message.Target, q string) ([]message.Message, error)
	React(ctx context.Context, actorID, messageID, emoji string) (message.Message, error)
	Delete(ctx context.Context, actorID, messageID string) error
	CreateMemory(ctx context.Context, actorID string, in message.MemoryInput) (message.Message, error)
	ListMemories(ctx context.Context, actorID, groupID string) ([]message.Message, error)
	CreateJournal(ctx context.Context, actorID string, in message.JournalInput) (message.Message, error)
	ListJournals(ctx context.Context, actorID, groupID string) ([]message.Message, error)
}

type MessageHandler struct {
	Svc MessageService
}

type sendMessageReq struct {
	ReceiverID  string `json:"receiver_id"`
	GroupID     string `json:"group_id"`
	Content     string `json:"content"`
	MediaURL    string `json:"media_url"`
	MessageType string `json:"message_type"`
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	id, _ := identity.FromContext(r.Context())

	var req sendMessageReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.ReceiverID == "" && req.GroupID == "" {
		writeError(w, http.StatusBadRequest, "provide either receiver_id or group_id")
		return
	}
	if req.Content == "" && req.MediaURL == "" {
		writeError(w, http.StatusBadRequest, "message must have content or media")
		return
	}

	m, err := h.Svc.Send(r.Context(), id.UserID, message.SendInput{
		ReceiverID:  req.ReceiverID,
		GroupID:     req.GroupID,
		Content:     req.Content,
		MediaURL:    req.MediaURL,
		MessageType: req.MessageType,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "Message sent successfully", "data": m})
}

// targetFromQuery reads ?group_id= or ?user1=&user2= and checks that a
// pair query comes from one of the two users.
func targetFromQuery(r *http.Request, actorID string) (message.Target, int, string) {
	q := r.URL.Query()
	t := message.Target{
		GroupID: q.Get("group_id"),
		User1:   q.Get("user1"),
		User2:   q.Get("user2"),
	}

	if t.GroupID != "" {
		return t, 0, ""
	}
	if t.User1 == "" || t.User2 == "" {
		return t, http.StatusBadRequest, "provide either group_id or user pair"
	}
	if actorID != t.User1 && actorID != t.User2 {
		return t, http.StatusForbidden, "you are not part of this conversation"
	}
	return t, 0, ""
}

func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	id, _ := identity.FromContext(r.Context())

	t, status, msg := targetFromQuery(r, id.UserID)
	if status != 0 {
		writeError(w, status, msg)
		return
	}

	msgs, err := h.Svc.List(r.Context(), id.UserID, t)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (h *MessageHandler) Search(w http.ResponseWriter, r *http.Request) {
	id, _ := identity.FromContext(r.Context())

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, http.StatusBadRequest, "search query required")
		return
	}

	t, status, msg := targetFromQuery(r, id.UserID)
	if status != 0 {
		writeError(w, status, msg)
		return
	}

	msgs, err := h.Svc.Search(r.Context(), id.UserID, t, q)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

type reactReq struct {
	Reaction string `json:"reaction" validate:"required"`
}

func (h *MessageHandler) React(w http.ResponseWriter, r *http.Request) {
	id, _ := identity.FromContext(r.Context())
	messageID := chi.URLParam(r, "id")

	var req reactReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.Svc.React(r.Context(), id.UserID, messageID, req.Reaction)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Reaction updated", "data": m})
}

func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := identity.FromContext(r.Context())
	messageID := chi.URLParam(r, "id")

	if err := h.Svc.Delete(r.Context(), id.UserID, messageID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Message deleted successfully"})
}

type memoryReq struct {
	GroupID    string  `json:"group_id" validate:"required"`
	MediaURL   string  `json:"media_url" validate:"required"`
	Caption    string  `json:"caption"`
	MemoryDate *string `json:"memory_date"` // RFC3339 optional
}

func (h *MessageHandler) CreateMemory(w http.ResponseWriter, r *http.Request) {
	id, _ := identity.FromContext(r.Context())

	var req memoryReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var memoryDate *time.Time
	if req.MemoryDate != nil && strings.TrimSpace(*req.MemoryDate) != "" {
		t, err := time.Parse(time.RFC3339, *req.MemoryDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid memory_date (RFC3339)")
			return
		}
		memoryDate = &t
	}

	m, err := h.Svc.CreateMemory(r.Context(), id.UserID, message.MemoryInput{
		GroupID:    req.GroupID,
		MediaURL:   req.MediaURL,
		Caption:    req.Caption,
		MemoryDate: memoryDate,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "Memory uploaded", "data": m})
}

func (h *MessageHandler) ListMemories(w http.ResponseWriter, r *http.Request) {
	id, _ := identity.FromContext(r.Context())
	groupID := chi.URLParam(r, "group_id")

	msgs, err := h.Svc.ListMemories(r.Context(), id.UserID, groupID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

type journalReq struct {
	GroupID  string `json:"group_id"`
	Title    string `json:"title"`
	Content  string `json:"content" validate:"required"`
	Mood     string `json:"mood"`
	MediaURL string `json:"media_url"`
}

func (h *MessageHandler) CreateJournal(w http.ResponseWriter, r *http.Request) {
	id, _ := identity.FromContext(r.Context())

	var req journalReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.Svc.CreateJournal(r.Context(), id.UserID, message.JournalInput{
		GroupID:  req.GroupID,
		Title:    req.Title,
		Content:  req.Content,
		Mood:     req.Mood,
		MediaURL: req.MediaURL,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "Journal entry created", "data": m})
}

func (h *MessageHandler) ListJournals(w http.ResponseWriter, r *http.Request) {
	id, _ := identity.FromContext(r.Context())
	groupID := r.URL.Query().Get("group_id")

	msgs, err := h.Svc.ListJournals(r.Context(), id.UserID, groupID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}
