// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"persona/internal/models"
	"persona/internal/observability"

	"gorm.io/gorm"
)

// ProfileRepository defines interface for profile operations
type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id uint) (*models.Profile, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type profileRepository struct {
	db      *gorm.DB
	metrics *observability.DatabaseMetrics
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db, metrics: observability.NewDatabaseMetrics(db)}
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	defer r.metrics.TrackQuery("create", "profiles")()
	return r.db.WithContext(ctx).Create(profile).Error
}

// GetByID loads a profile with its comment back-references, oldest first,
// matching the insertion order of the original comment id list.
func (r *profileRepository) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	defer r.metrics.TrackQuery("get_by_id", "profiles")()

	var profile models.Profile
	err := r.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		First(&profile, id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Exists(ctx context.Context, id uint) (bool, error) {
	defer r.metrics.TrackQuery("exists", "profiles")()

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
