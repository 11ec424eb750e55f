package expense

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Expense struct {
	ID          string          `gorm:"primaryKey" json:"id"`
	GroupID     string          `gorm:"index;not null" json:"group_id"`
	CreatorID   string          `gorm:"index;not null" json:"creator_id"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Amount      float64         `gorm:"type:numeric(12,2);not null" json:"amount"`
	Split       json.RawMessage `gorm:"type:jsonb;not null;default:'{}'::jsonb" json:"split"`
	CreatedAt   time.Time       `gorm:"not null;default:now()" json:"created_at"`
}

func (e *Expense) BeforeCreate(*gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
