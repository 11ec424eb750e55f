package poll

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"wave/internal/jsonmap"
	"wave/internal/user"
)

type Poll struct {
	ID        string  `gorm:"primaryKey" json:"id"`
	CreatorID string  `gorm:"index;not null" json:"creator_id"`
	GroupID   *string `gorm:"index" json:"group_id,omitempty"`

	Question string         `gorm:"not null" json:"question"`
	Options  pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"options"`

	// Map of user id -> chosen option, one entry per voter.
	Votes jsonmap.Map `gorm:"type:jsonb;not null;default:'{}'::jsonb" json:"votes"`

	CreatedAt time.Time `gorm:"index;not null;default:now()" json:"created_at"`

	Creator *user.Profile `gorm:"foreignKey:CreatorID;references:ID" json:"creator,omitempty"`
}

func (p *Poll) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (p *Poll) hasOption(option string) bool {
	for _, o := range p.Options {
		if o == option {
			return true
		}
	}
	return false
}
