package message

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wave/internal/group"
	"wave/internal/jsonmap"
	"wave/internal/user"
)

var (
	ErrNotFound  = errors.New("message not found")
	ErrForbidden = errors.New("you can only delete your own messages")
)

const memoryPlaceholderCaption = "Shared a memory"

type Service struct {
	DB     *gorm.DB
	Groups *group.Service
}

// Target selects a conversation: a group, or a direct pair in either
// ordering.
type Target struct {
	GroupID string
	User1   string
	User2   string
}

type SendInput struct {
	ReceiverID  string
	GroupID     string
	Content     string
	MediaURL    string
	MessageType string
}

func (s *Service) Send(ctx context.Context, senderID string, in SendInput) (Message, error) {
	mt := in.MessageType
	if mt == "" {
		mt = TypeText
	}

	m := Message{
		SenderID:    senderID,
		ReceiverID:  optional(in.ReceiverID),
		GroupID:     optional(in.GroupID),
		Content:     in.Content,
		MediaURL:    optional(in.MediaURL),
		MessageType: mt,
		Reactions:   jsonmap.Map{},
	}
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return Message{}, err
	}
	if err := s.attachSender(ctx, &m); err != nil {
		return Message{}, err
	}
	return m, nil
}

func (s *Service) List(ctx context.Context, actorID string, t Target) ([]Message, error) {
	q, err := s.targetQuery(ctx, actorID, t)
	if err != nil {
		return nil, err
	}

	var rows []Message
	if err := q.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) Search(ctx context.Context, actorID string, t Target, query string) ([]Message, error) {
	q, err := s.targetQuery(ctx, actorID, t)
	if err != nil {
		return nil, err
	}

	var rows []Message
	if err := q.Where("content ILIKE ?", "%"+query+"%").
		Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) targetQuery(ctx context.Context, actorID string, t Target) (*gorm.DB, error) {
	q := s.DB.WithContext(ctx).Model(&Message{}).Preload("Sender", profileColumns)

	if t.GroupID != "" {
		if err := s.requireMember(ctx, t.GroupID, actorID); err != nil {
			return nil, err
		}
		return q.Where("group_id = ?", t.GroupID), nil
	}

	// Direct pair, matched in either ordering.
	return q.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		t.User1, t.User2, t.User2, t.User1,
	), nil
}

// React toggles the actor's emoji on a message: the same emoji removes
// the entry, a different one overwrites it. The row lock serializes
// concurrent reactions so no update is silently dropped.
func (s *Service) React(ctx context.Context, actorID, messageID, emoji string) (Message, error) {
	var m Message
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", messageID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if m.Reactions == nil {
			m.Reactions = jsonmap.Map{}
		}
		toggleReaction(m.Reactions, actorID, emoji)
		m.UpdatedAt = time.Now()

		return tx.Model(&Message{}).Where("id = ?", messageID).Updates(map[string]any{
			"reaction":   m.Reactions,
			"updated_at": m.UpdatedAt,
		}).Error
	})
	if err != nil {
		return Message{}, err
	}
	if err := s.attachSender(ctx, &m); err != nil {
		return Message{}, err
	}
	return m, nil
}

func toggleReaction(reactions jsonmap.Map, actorID, emoji string) {
	if reactions[actorID] == emoji {
		delete(reactions, actorID)
		return
	}
	reactions[actorID] = emoji
}

func (s *Service) Delete(ctx context.Context, actorID, messageID string) error {
	var m Message
	if err := s.DB.WithContext(ctx).Select("id", "sender_id").
		Where("id = ?", messageID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if m.SenderID != actorID {
		return ErrForbidden
	}
	return s.DB.WithContext(ctx).Delete(&Message{}, "id = ?", messageID).Error
}

type MemoryInput struct {
	GroupID    string
	MediaURL   string
	Caption    string
	MemoryDate *time.Time
}

// CreateMemory posts a media-bearing group message of type memory. The
// creation time may be backdated by the caller.
func (s *Service) CreateMemory(ctx context.Context, actorID string, in MemoryInput) (Message, error) {
	if err := s.requireMember(ctx, in.GroupID, actorID); err != nil {
		return Message{}, err
	}

	content := in.Caption
	if content == "" {
		content = memoryPlaceholderCaption
	}

	m := Message{
		SenderID:    actorID,
		GroupID:     optional(in.GroupID),
		Content:     content,
		MediaURL:    optional(in.MediaURL),
		MessageType: TypeMemory,
		Reactions:   jsonmap.Map{},
	}
	if in.MemoryDate != nil {
		m.CreatedAt = *in.MemoryDate
	}
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return Message{}, err
	}
	if err := s.attachSender(ctx, &m); err != nil {
		return Message{}, err
	}
	return m, nil
}

func (s *Service) ListMemories(ctx context.Context, actorID, groupID string) ([]Message, error) {
	if err := s.requireMember(ctx, groupID, actorID); err != nil {
		return nil, err
	}

	var rows []Message
	err := s.DB.WithContext(ctx).Model(&Message{}).Preload("Sender", profileColumns).
		Where("group_id = ? AND message_type = ?", groupID, TypeMemory).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type JournalInput struct {
	GroupID  string
	Title    string
	Content  string
	Mood     string
	MediaURL string
}

// CreateJournal stores a journal entry as a message whose content
// column holds the serialized {title, content, mood} body.
func (s *Service) CreateJournal(ctx context.Context, actorID string, in JournalInput) (Message, error) {
	if in.GroupID != "" {
		if err := s.requireMember(ctx, in.GroupID, actorID); err != nil {
			return Message{}, err
		}
	}

	body, err := EncodeJournal(JournalBody{Title: in.Title, Content: in.Content, Mood: in.Mood})
	if err != nil {
		return Message{}, err
	}

	m := Message{
		SenderID:    actorID,
		GroupID:     optional(in.GroupID),
		Content:     body,
		MediaURL:    optional(in.MediaURL),
		MessageType: TypeJournal,
		Reactions:   jsonmap.Map{},
	}
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return Message{}, err
	}
	if err := s.attachSender(ctx, &m); err != nil {
		return Message{}, err
	}
	return m, nil
}

// ListJournals returns a group's entries (membership required) or, with
// no group, the actor's personal entries.
func (s *Service) ListJournals(ctx context.Context, actorID, groupID string) ([]Message, error) {
	q := s.DB.WithContext(ctx).Model(&Message{}).Preload("Sender", profileColumns).
		Where("message_type = ?", TypeJournal)

	if groupID != "" {
		if err := s.requireMember(ctx, groupID, actorID); err != nil {
			return nil, err
		}
		q = q.Where("group_id = ?", groupID)
	} else {
		q = q.Where("sender_id = ? AND group_id IS NULL", actorID)
	}

	var rows []Message
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) requireMember(ctx context.Context, groupID, userID string) error {
	ok, err := s.Groups.IsMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return group.ErrNotMember
	}
	return nil
}

func (s *Service) attachSender(ctx context.Context, m *Message) error {
	var p user.Profile
	err := s.DB.WithContext(ctx).Model(&user.Profile{}).
		Select("id", "username", "avatar_url").
		Where("id = ?", m.SenderID).
		Scan(&p).Error
	if err != nil {
		return err
	}
	if p.ID != "" {
		m.Sender = &p
	}
	return nil
}

func profileColumns(db *gorm.DB) *gorm.DB {
	return db.Select("id", "username", "avatar_url")
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
