package user

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("user not found")

type Service struct {
	DB *gorm.DB
}

type CreateInput struct {
	Username  string
	AvatarURL string
	Bio       string
	FunnyTags []string
}

// Create inserts the profile row for the verified identity. Idempotent:
// when a row already exists it is returned unchanged and created=false.
func (s *Service) Create(ctx context.Context, userID, email string, in CreateInput) (User, bool, error) {
	var existing User
	err := s.DB.WithContext(ctx).Where("id = ?", userID).First(&existing).Error
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, false, err
	}

	u := User{
		ID:        userID,
		Username:  in.Username,
		Email:     email,
		AvatarURL: in.AvatarURL,
		Bio:       in.Bio,
		FunnyTags: pq.StringArray(in.FunnyTags),
	}
	if u.FunnyTags == nil {
		u.FunnyTags = pq.StringArray{}
	}
	if err := s.DB.WithContext(ctx).Create(&u).Error; err != nil {
		return User{}, false, err
	}
	return u, true, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	var u User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

type UpdateInput struct {
	Bio       *string
	AvatarURL *string
	FunnyTags *[]string
}

// Update writes only the fields present in the input; absent fields are
// left untouched.
func (s *Service) Update(ctx context.Context, userID string, in UpdateInput) (User, error) {
	updates := map[string]any{}
	if in.Bio != nil {
		updates["bio"] = *in.Bio
	}
	if in.AvatarURL != nil {
		updates["avatar_url"] = *in.AvatarURL
	}
	if in.FunnyTags != nil {
		updates["funny_tags"] = pq.StringArray(*in.FunnyTags)
	}

	if len(updates) > 0 {
		res := s.DB.WithContext(ctx).Model(&User{}).Where("id = ?", userID).Updates(updates)
		if res.Error != nil {
			return User{}, res.Error
		}
		if res.RowsAffected == 0 {
			return User{}, ErrNotFound
		}
	}

	var u User
	if err := s.DB.WithContext(ctx).Where("id = ?", userID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

// BumpStreak increments the streak counter once per UTC calendar day.
// The row lock keeps repeated same-day calls idempotent under
// concurrency.
func (s *Service) BumpStreak(ctx context.Context, userID string) (User, error) {
	var u User
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", userID).First(&u).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		today := time.Now().UTC().Truncate(24 * time.Hour)
		u.StreakCount = nextStreak(u.StreakCount, u.LastMeetupDate, today)
		u.LastMeetupDate = &today

		return tx.Model(&User{}).Where("id = ?", userID).Updates(map[string]any{
			"streak_count":     u.StreakCount,
			"last_meetup_date": u.LastMeetupDate,
			"updated_at":       time.Now(),
		}).Error
	})
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func nextStreak(count int, last *time.Time, today time.Time) int {
	if last != nil && sameDay(*last, today) {
		return count
	}
	return count + 1
}

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

// Search matches username or email by case-insensitive substring,
// excluding the caller, capped at 10 rows per field, deduplicated by id.
func (s *Service) Search(ctx context.Context, actorID, q string) ([]Profile, error) {
	pat := "%" + q + "%"

	var byUsername, byEmail []Profile
	if err := s.DB.WithContext(ctx).Model(&User{}).
		Where("username ILIKE ?", pat).
		Where("id <> ?", actorID).
		Limit(10).
		Find(&byUsername).Error; err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Model(&User{}).
		Where("email ILIKE ?", pat).
		Where("id <> ?", actorID).
		Limit(10).
		Find(&byEmail).Error; err != nil {
		return nil, err
	}

	return mergeProfiles(byUsername, byEmail), nil
}

func mergeProfiles(lists ...[]Profile) []Profile {
	seen := map[string]struct{}{}
	out := make([]Profile, 0)
	for _, list := range lists {
		for _, p := range list {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}
