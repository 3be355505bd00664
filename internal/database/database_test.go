package database

import (
	"testing"

	"persona/internal/config"
	"persona/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestConnect_SqliteMigratesSchema(t *testing.T) {
	cfg := &config.Config{
		Port:     "3000",
		Env:      "test",
		DBDriver: "sqlite",
		DBPath:   ":memory:",
	}

	db, err := Connect(cfg)
	require.NoError(t, err)

	for _, model := range []any{&models.Profile{}, &models.Comment{}, &models.Like{}} {
		assert.True(t, db.Migrator().HasTable(model))
	}

	// sqlite keeps a single pooled connection so every query sees the
	// same in-memory store.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	_ = sqlDB.Close()
}

func TestConnect_EnforcesLikeUniqueness(t *testing.T) {
	cfg := &config.Config{
		Port:     "3000",
		Env:      "test",
		DBDriver: "sqlite",
		DBPath:   ":memory:",
	}

	db, err := Connect(cfg)
	require.NoError(t, err)
	defer func() {
		if sqlDB, derr := db.DB(); derr == nil {
			_ = sqlDB.Close()
		}
	}()

	profile := &models.Profile{Name: "p", Description: "d", MBTI: "INTP", Enneagram: "5w6",
		Variant: "sp/sx", Tritype: 513, Socionics: "LII", Sloan: "RCOEI", Psyche: "LVEF",
		Temperaments: "Melancholic", Image: "img"}
	require.NoError(t, db.Create(profile).Error)

	comment := &models.Comment{UserID: "u", Title: "t", Description: "d", ProfileID: profile.ID}
	require.NoError(t, db.Create(comment).Error)

	require.NoError(t, db.Create(&models.Like{CommentID: comment.ID, UserID: "u"}).Error)
	err = db.Create(&models.Like{CommentID: comment.ID, UserID: "u"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey, "the (comment_id, user_id) pair is unique and the violation is translated")

	// A different user is still allowed.
	assert.NoError(t, db.Create(&models.Like{CommentID: comment.ID, UserID: "v"}).Error)
}

func TestCustomGormLogger_LogMode(t *testing.T) {
	base := &CustomGormLogger{Config: logger.Config{LogLevel: logger.Warn}}

	raised := base.LogMode(logger.Info)
	assert.Equal(t, logger.Warn, base.Config.LogLevel, "LogMode must not mutate the receiver")

	raisedLogger, ok := raised.(*CustomGormLogger)
	require.True(t, ok)
	assert.Equal(t, logger.Info, raisedLogger.Config.LogLevel)
}
