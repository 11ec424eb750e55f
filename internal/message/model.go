package message

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wave/internal/jsonmap"
	"wave/internal/user"
)

const (
	TypeText    = "text"
	TypeMemory  = "memory"
	TypeJournal = "journal"
)

// Message is a chat message, a group memory or a journal entry. It
// targets a direct recipient or a group; exclusivity of the two is not
// enforced. A message must carry content or media.
type Message struct {
	ID         string  `gorm:"primaryKey" json:"id"`
	SenderID   string  `gorm:"index;not null" json:"sender_id"`
	ReceiverID *string `gorm:"index" json:"receiver_id,omitempty"`
	GroupID    *string `gorm:"index" json:"group_id,omitempty"`

	Content     string  `gorm:"type:text;not null;default:''" json:"content"`
	MediaURL    *string `json:"media_url,omitempty"`
	MessageType string  `gorm:"index;not null;default:'text'" json:"message_type"`

	// Sparse map of user id -> emoji.
	Reactions jsonmap.Map `gorm:"column:reaction;type:jsonb;not null;default:'{}'::jsonb" json:"reaction"`

	CreatedAt time.Time `gorm:"index;not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`

	Sender *user.Profile `gorm:"foreignKey:SenderID;references:ID" json:"sender,omitempty"`
}

func (m *Message) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// JournalBody is the structure serialized into the content column of a
// journal message.
type JournalBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Mood    string `json:"mood,omitempty"`
}

func EncodeJournal(b JournalBody) (string, error) {
	raw, err := json.Marshal(b)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func DecodeJournal(content string) (JournalBody, error) {
	var b JournalBody
	err := json.Unmarshal([]byte(content), &b)
	return b, err
}
