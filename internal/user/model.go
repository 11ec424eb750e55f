package user

import (
	"time"

	"github.com/lib/pq"
)

// User is the profile row for an authenticated identity. The primary
// key equals the auth provider's subject id.
type User struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"index;not null;default:''" json:"username"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
	AvatarURL string         `gorm:"not null;default:''" json:"avatar_url"`
	Bio       string         `gorm:"type:text;not null;default:''" json:"bio"`
	FunnyTags pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"funny_tags"`

	StreakCount    int        `gorm:"not null;default:0" json:"streak_count"`
	LastMeetupDate *time.Time `gorm:"type:date" json:"last_meetup_date,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

// Profile is the public subset of a user row, joined onto messages and
// polls and returned by search.
type Profile struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatar_url"`
}

func (Profile) TableName() string { return "users" }
