package poll

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wave/internal/group"
	"wave/internal/jsonmap"
)

var (
	ErrNotFound  = errors.New("poll not found")
	ErrBadOption = errors.New("option is not one of the poll options")
)

type Service struct {
	DB     *gorm.DB
	Groups *group.Service
}

type CreateInput struct {
	GroupID  string
	Question string
	Options  []string
}

func (s *Service) Create(ctx context.Context, creatorID string, in CreateInput) (Poll, error) {
	if in.GroupID != "" {
		if err := s.requireMember(ctx, in.GroupID, creatorID); err != nil {
			return Poll{}, err
		}
	}

	p := Poll{
		CreatorID: creatorID,
		GroupID:   optional(in.GroupID),
		Question:  in.Question,
		Options:   pq.StringArray(in.Options),
		Votes:     jsonmap.Map{},
	}
	if err := s.DB.WithContext(ctx).Create(&p).Error; err != nil {
		return Poll{}, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, actorID, groupID string) ([]Poll, error) {
	q := s.DB.WithContext(ctx).Model(&Poll{}).
		Preload("Creator", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username", "avatar_url")
		})

	if groupID != "" {
		if err := s.requireMember(ctx, groupID, actorID); err != nil {
			return nil, err
		}
		q = q.Where("group_id = ?", groupID)
	}

	var rows []Poll
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Vote records the voter's choice, overwriting any earlier one. The
// option must be one of the poll's declared options. The row lock
// serializes concurrent votes on the same poll.
func (s *Service) Vote(ctx context.Context, voterID, pollID, option string) (Poll, error) {
	var p Poll
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", pollID).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if !p.hasOption(option) {
			return ErrBadOption
		}

		if p.Votes == nil {
			p.Votes = jsonmap.Map{}
		}
		p.Votes[voterID] = option

		return tx.Model(&Poll{}).Where("id = ?", pollID).
			Update("votes", p.Votes).Error
	})
	if err != nil {
		return Poll{}, err
	}
	return p, nil
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

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
