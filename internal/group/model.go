package group

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Group struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text;not null;default:''" json:"description"`
	CreatorID   string    `gorm:"index;not null" json:"creator_id"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (g *Group) BeforeCreate(*gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// Membership grants a user access to a group's scoped resources.
// Exactly one row per (group, user) pair.
type Membership struct {
	GroupID   string    `gorm:"primaryKey" json:"group_id"`
	UserID    string    `gorm:"primaryKey;index" json:"user_id"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (Membership) TableName() string { return "group_members" }
