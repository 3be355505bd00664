package repository

import (
	"context"

	"persona/internal/models"
	"persona/internal/observability"

	"gorm.io/gorm"
)

// LikeRepository defines interface for like operations. Like and Unlike keep
// the likes counter and the like rows consistent by running both writes in a
// single transaction, with the fact row written before the counter update.
type LikeRepository interface {
	IsLiked(ctx context.Context, commentID uint, userID string) (bool, error)
	Like(ctx context.Context, commentID uint, userID string) error
	Unlike(ctx context.Context, commentID uint, userID string) (bool, error)
}

type likeRepository struct {
	db      *gorm.DB
	metrics *observability.DatabaseMetrics
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db, metrics: observability.NewDatabaseMetrics(db)}
}

func (r *likeRepository) IsLiked(ctx context.Context, commentID uint, userID string) (bool, error) {
	defer r.metrics.TrackQuery("is_liked", "likes")()

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *likeRepository) Like(ctx context.Context, commentID uint, userID string) error {
	defer r.metrics.TrackQuery("like", "likes")()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		like := &models.Like{CommentID: commentID, UserID: userID}
		if err := tx.Create(like).Error; err != nil {
			return err
		}
		return tx.Model(&models.Comment{}).
			Where("id = ?", commentID).
			UpdateColumn("likes", gorm.Expr("likes + ?", 1)).Error
	})
}

// Unlike removes the like row for the pair and decrements the counter only
// when a row was actually deleted. Returns whether a like was removed.
func (r *likeRepository) Unlike(ctx context.Context, commentID uint, userID string) (bool, error) {
	defer r.metrics.TrackQuery("unlike", "likes")()

	var removed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).
			Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true
		return tx.Model(&models.Comment{}).
			Where("id = ?", commentID).
			UpdateColumn("likes", gorm.Expr("likes - ?", 1)).Error
	})
	return removed, err
}
