package repository

import (
	"context"

	"persona/internal/models"
	"persona/internal/observability"

	"gorm.io/gorm"
)

// CommentRepository defines interface for comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListByTagValues(ctx context.Context, kind models.TaxonomyKind, values []string) ([]*models.Comment, error)
	ListRecent(ctx context.Context, limit, offset int) ([]*models.Comment, error)
	ListMostLiked(ctx context.Context, limit, offset int) ([]*models.Comment, error)
}

type commentRepository struct {
	db      *gorm.DB
	metrics *observability.DatabaseMetrics
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db, metrics: observability.NewDatabaseMetrics(db)}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	defer r.metrics.TrackQuery("create", "comments")()
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	defer r.metrics.TrackQuery("get_by_id", "comments")()

	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByTagValues returns every comment whose tag column for the given
// taxonomy is a member of the allow-list. The kind is restricted to the three
// fixed taxonomies, so the column name never comes from user input.
func (r *commentRepository) ListByTagValues(
	ctx context.Context,
	kind models.TaxonomyKind,
	values []string,
) ([]*models.Comment, error) {
	defer r.metrics.TrackQuery("list_by_tag", "comments")()

	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Where(string(kind)+" IN ?", values).
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) ListRecent(ctx context.Context, limit, offset int) ([]*models.Comment, error) {
	defer r.metrics.TrackQuery("list_recent", "comments")()

	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) ListMostLiked(ctx context.Context, limit, offset int) ([]*models.Comment, error) {
	defer r.metrics.TrackQuery("list_most_liked", "comments")()

	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Order("likes desc").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	return comments, err
}
