// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"persona/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	// #nosec G404: acceptable for seeding
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (f *Factory) pick(values []string) string {
	return values[f.r.Intn(len(values))]
}

// CreateProfile constructs and persists a sample `models.Profile`.
// Optional override functions may modify the generated profile before saving.
func (f *Factory) CreateProfile(overrides ...func(*models.Profile)) (*models.Profile, error) {
	profile := &models.Profile{
		Name:         gofakeit.Name(),
		Description:  gofakeit.Paragraph(1, 3, 8, "\n"),
		MBTI:         f.pick(models.MBTITypes),
		Enneagram:    f.pick(models.EnneagramTypes),
		Variant:      f.pick([]string{"sp/sx", "sp/so", "sx/sp", "sx/so", "so/sp", "so/sx"}),
		Tritype:      f.r.Intn(900) + 100,
		Socionics:    f.pick([]string{"ILE", "SEI", "ESE", "LII", "EIE", "LSI", "SLE", "IEI"}),
		Sloan:        f.pick([]string{"RCOAI", "SCUEN", "RLUEI", "SCOAN", "RCUEI"}),
		Psyche:       f.pick([]string{"FEVL", "EVFL", "LVEF", "VLEF"}),
		Temperaments: f.pick([]string{"Melancholic", "Sanguine", "Choleric", "Phlegmatic"}),
		Image:        fmt.Sprintf("https://i.pravatar.cc/300?u=%s", gofakeit.UUID()),
	}

	for _, override := range overrides {
		override(profile)
	}

	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// CreateComment constructs and persists a sample `models.Comment` on the
// provided profile.
func (f *Factory) CreateComment(profile *models.Profile, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		UserID:      uuid.NewString(),
		MBTI:        f.pick(models.MBTITypes),
		Enneagram:   f.pick(models.EnneagramTypes),
		Zodiac:      f.pick(models.ZodiacSigns),
		Title:       gofakeit.Sentence(5),
		Description: gofakeit.Paragraph(1, 2, 6, "\n"),
		ProfileID:   profile.ID,
	}

	// realistic created_at spread for the recent feed
	daysBack := f.r.Intn(90)
	hoursBack := f.r.Intn(24)
	comment.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like from `userID` on `comment` and bumps the
// comment's counter, mirroring the like endpoint's transactional behaviour.
func (f *Factory) CreateLike(comment *models.Comment, userID string) error {
	return f.db.Transaction(func(tx *gorm.DB) error {
		like := &models.Like{
			CommentID: comment.ID,
			UserID:    userID,
		}
		if err := tx.Create(like).Error; err != nil {
			return err
		}
		return tx.Model(&models.Comment{}).
			Where("id = ?", comment.ID).
			UpdateColumn("likes", gorm.Expr("likes + ?", 1)).Error
	})
}
