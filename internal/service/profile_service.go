package service

import (
	"context"
	"errors"
	"strings"

	"persona/internal/models"
	"persona/internal/observability"
	"persona/internal/repository"

	"gorm.io/gorm"
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// CreateProfileInput carries the full profile field set; every field is
// required by the schema.
type CreateProfileInput struct {
	Name         string
	Description  string
	MBTI         string
	Enneagram    string
	Variant      string
	Tritype      int
	Socionics    string
	Sloan        string
	Psyche       string
	Temperaments string
	Image        string
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// CreateProfile validates the full field set and persists a new profile.
func (s *ProfileService) CreateProfile(ctx context.Context, in CreateProfileInput) (*models.Profile, error) {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", in.Name},
		{"description", in.Description},
		{"mbti", in.MBTI},
		{"enneagram", in.Enneagram},
		{"variant", in.Variant},
		{"socionics", in.Socionics},
		{"sloan", in.Sloan},
		{"psyche", in.Psyche},
		{"temperaments", in.Temperaments},
		{"image", in.Image},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if in.Tritype <= 0 {
		missing = append(missing, "tritype")
	}
	if len(missing) > 0 {
		return nil, models.NewValidationError("Missing required fields: " + strings.Join(missing, ", "))
	}

	profile := &models.Profile{
		Name:         in.Name,
		Description:  in.Description,
		MBTI:         in.MBTI,
		Enneagram:    in.Enneagram,
		Variant:      in.Variant,
		Tritype:      in.Tritype,
		Socionics:    in.Socionics,
		Sloan:        in.Sloan,
		Psyche:       in.Psyche,
		Temperaments: in.Temperaments,
		Image:        in.Image,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	observability.ProfilesCreated.Inc()

	return profile, nil
}

// GetProfile fetches a profile with its comment back-references.
func (s *ProfileService) GetProfile(ctx context.Context, id uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Profile")
		}
		return nil, err
	}
	return profile, nil
}
