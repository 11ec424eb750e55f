package suggestion

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Suggestion is an AI-generated meetup idea for a group, optionally
// resolved to a place near the members' locations.
type Suggestion struct {
	ID        string `gorm:"primaryKey" json:"id"`
	CreatorID string `gorm:"index;not null" json:"creator_id"`
	GroupID   string `gorm:"index;not null" json:"group_id"`

	Content        string   `gorm:"type:text;not null" json:"content"`
	SuggestedPlace *string  `json:"suggested_place,omitempty"`
	Lat            *float64 `json:"lat,omitempty"`
	Lng            *float64 `json:"lng,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (s *Suggestion) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
