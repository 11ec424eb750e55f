package suggestion

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"wave/internal/group"
)

// TextGenerator produces a free-text suggestion from a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Geocoder resolves coordinates to a place.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (Place, error)
}

type Place struct {
	Name string
	Lat  float64
	Lng  float64
}

type Service struct {
	DB     *gorm.DB
	Groups *group.Service
	Text   TextGenerator
	Geo    Geocoder
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type CreateInput struct {
	GroupID   string
	Prompt    string
	Locations []LatLng
}

// Create generates suggestion text and resolves a meetup place, then
// persists the combined row. Failures of either external call degrade
// gracefully: the prompt stands in for the text, and place fields are
// simply omitted.
func (s *Service) Create(ctx context.Context, creatorID string, in CreateInput) (Suggestion, error) {
	if err := s.requireMember(ctx, in.GroupID, creatorID); err != nil {
		return Suggestion{}, err
	}

	content := in.Prompt
	if s.Text != nil {
		if txt, err := s.Text.Generate(ctx, in.Prompt); err == nil && txt != "" {
			content = txt
		} else if err != nil {
			slog.Warn("suggestion text generation failed", "error", err)
		}
	}

	sg := Suggestion{
		CreatorID: creatorID,
		GroupID:   in.GroupID,
		Content:   content,
	}

	if len(in.Locations) > 0 {
		first := in.Locations[0]
		sg.Lat = &first.Lat
		sg.Lng = &first.Lng
		if s.Geo != nil {
			if place, err := s.Geo.ReverseGeocode(ctx, first.Lat, first.Lng); err == nil && place.Name != "" {
				sg.SuggestedPlace = &place.Name
			} else if err != nil {
				slog.Warn("suggestion geocoding failed", "error", err)
			}
		}
	}

	if err := s.DB.WithContext(ctx).Create(&sg).Error; err != nil {
		return Suggestion{}, err
	}
	return sg, nil
}

func (s *Service) ListForGroup(ctx context.Context, actorID, groupID string) ([]Suggestion, error) {
	if err := s.requireMember(ctx, groupID, actorID); err != nil {
		return nil, err
	}

	var rows []Suggestion
	err := s.DB.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at DESC").
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
