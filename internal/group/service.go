package group

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound  = errors.New("group not found")
	ErrNotMember = errors.New("not a member of this group")
)

type Service struct {
	DB *gorm.DB
}

type CreateInput struct {
	Name        string
	Description string
	Members     []string
}

// Create inserts the group and its membership rows in one transaction
// so a failed membership insert cannot leave an orphaned group.
func (s *Service) Create(ctx context.Context, creatorID string, in CreateInput) (Group, error) {
	g := Group{
		Name:        in.Name,
		Description: in.Description,
		CreatorID:   creatorID,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&g).Error; err != nil {
			return err
		}

		rows := make([]Membership, 0, len(in.Members)+1)
		for _, uid := range memberSet(creatorID, in.Members) {
			rows = append(rows, Membership{GroupID: g.ID, UserID: uid})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return Group{}, err
	}
	return g, nil
}

// memberSet deduplicates the member list and always includes the
// creator exactly once.
func memberSet(creatorID string, members []string) []string {
	seen := map[string]struct{}{creatorID: {}}
	out := []string{creatorID}
	for _, uid := range members {
		if uid == "" {
			continue
		}
		if _, ok := seen[uid]; ok {
			continue
		}
		seen[uid] = struct{}{}
		out = append(out, uid)
	}
	return out
}

func (s *Service) ListForUser(ctx context.Context, userID string) ([]Group, error) {
	var groups []Group
	err := s.DB.WithContext(ctx).Model(&Group{}).
		Joins("JOIN group_members gm ON gm.group_id = groups.id").
		Where("gm.user_id = ?", userID).
		Order("groups.created_at DESC").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// AddMember lets an existing member add a user to the group. Adding a
// user who is already a member is a no-op.
func (s *Service) AddMember(ctx context.Context, actorID, groupID, userID string) error {
	var g Group
	if err := s.DB.WithContext(ctx).Where("id = ?", groupID).First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	ok, err := s.IsMember(ctx, groupID, actorID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotMember
	}

	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&Membership{GroupID: groupID, UserID: userID}).Error
}

func (s *Service) IsMember(ctx context.Context, groupID, userID string) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&Membership{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&n).Error
	return n > 0, err
}
