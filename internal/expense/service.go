package expense

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"wave/internal/group"
)

type Service struct {
	DB     *gorm.DB
	Groups *group.Service
}

type CreateInput struct {
	GroupID     string
	Description string
	Amount      float64
	Split       json.RawMessage
}

func (s *Service) Create(ctx context.Context, creatorID string, in CreateInput) (Expense, error) {
	if err := s.requireMember(ctx, in.GroupID, creatorID); err != nil {
		return Expense{}, err
	}

	e := Expense{
		GroupID:     in.GroupID,
		CreatorID:   creatorID,
		Description: in.Description,
		Amount:      in.Amount,
		Split:       in.Split,
	}
	if len(e.Split) == 0 {
		e.Split = json.RawMessage(`{}`)
	}
	if err := s.DB.WithContext(ctx).Create(&e).Error; err != nil {
		return Expense{}, err
	}
	return e, nil
}

func (s *Service) ListForGroup(ctx context.Context, actorID, groupID string) ([]Expense, error) {
	if err := s.requireMember(ctx, groupID, actorID); err != nil {
		return nil, err
	}

	var rows []Expense
	err := s.DB.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
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
