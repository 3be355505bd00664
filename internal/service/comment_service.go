// Package service implements the application's business logic on top of the
// repository layer. Services accept typed inputs and return AppError kinds;
// HTTP status codes are chosen at the handler boundary only.
package service

import (
	"context"
	"errors"

	"persona/internal/models"
	"persona/internal/observability"
	"persona/internal/repository"

	"gorm.io/gorm"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	profileRepo repository.ProfileRepository
	likeRepo    repository.LikeRepository
}

type CreateCommentInput struct {
	UserID      string
	Title       string
	Description string
	ProfileID   uint
	MBTI        string
	Enneagram   string
	Zodiac      string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	profileRepo repository.ProfileRepository,
	likeRepo repository.LikeRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		profileRepo: profileRepo,
		likeRepo:    likeRepo,
	}
}

// CreateComment persists a new comment after verifying the referenced profile
// exists. The comment becomes part of the owning profile's comment list
// through its ProfileID reference.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.UserID == "" || in.Title == "" || in.Description == "" {
		return nil, models.NewValidationError("userId, title and description are required")
	}

	exists, err := s.profileRepo.Exists(ctx, in.ProfileID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Profile")
	}

	comment := &models.Comment{
		UserID:      in.UserID,
		MBTI:        in.MBTI,
		Enneagram:   in.Enneagram,
		Zodiac:      in.Zodiac,
		Title:       in.Title,
		Description: in.Description,
		ProfileID:   in.ProfileID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	observability.CommentsCreated.Inc()

	return comment, nil
}

// QueryByTaxonomy returns all comments whose tag for the given taxonomy is a
// member of that taxonomy's allow-list.
func (s *CommentService) QueryByTaxonomy(ctx context.Context, kind models.TaxonomyKind) ([]*models.Comment, error) {
	values, ok := models.TaxonomyValues(kind)
	if !ok {
		return nil, models.NewValidationError("Invalid query type")
	}
	return s.commentRepo.ListByTagValues(ctx, kind, values)
}

// ListRecent returns a page of comments ordered by descending creation time.
func (s *CommentService) ListRecent(ctx context.Context, page, limit int) ([]*models.Comment, error) {
	return s.commentRepo.ListRecent(ctx, limit, (page-1)*limit)
}

// ListMostLiked returns a page of comments ordered by descending like count.
func (s *CommentService) ListMostLiked(ctx context.Context, page, limit int) ([]*models.Comment, error) {
	return s.commentRepo.ListMostLiked(ctx, limit, (page-1)*limit)
}

func (s *CommentService) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment")
		}
		return nil, err
	}
	return comment, nil
}

// LikeComment records a like for the (comment, user) pair and increments the
// comment's like counter. At most one like per pair is accepted.
func (s *CommentService) LikeComment(ctx context.Context, commentID uint, userID string) error {
	if userID == "" {
		return models.NewValidationError("userId is required")
	}

	if _, err := s.GetComment(ctx, commentID); err != nil {
		return err
	}

	liked, err := s.likeRepo.IsLiked(ctx, commentID, userID)
	if err != nil {
		return err
	}
	if liked {
		observability.LikeOperations.WithLabelValues("like", "duplicate").Inc()
		return models.NewConflictError("You have already liked this comment")
	}

	if err := s.likeRepo.Like(ctx, commentID, userID); err != nil {
		// A concurrent like for the same pair loses the race on the unique
		// index; surface it the same way as the existence check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			observability.LikeOperations.WithLabelValues("like", "duplicate").Inc()
			return models.NewConflictError("You have already liked this comment")
		}
		observability.LikeOperations.WithLabelValues("like", "error").Inc()
		return err
	}

	observability.LikeOperations.WithLabelValues("like", "ok").Inc()
	return nil
}

// UnlikeComment removes the like for the (comment, user) pair, if present, and
// decrements the counter only when a like was actually removed. Unliking a
// comment that was never liked succeeds without touching the counter.
func (s *CommentService) UnlikeComment(ctx context.Context, commentID uint, userID string) error {
	if userID == "" {
		return models.NewValidationError("userId is required")
	}

	if _, err := s.GetComment(ctx, commentID); err != nil {
		return err
	}

	removed, err := s.likeRepo.Unlike(ctx, commentID, userID)
	if err != nil {
		observability.LikeOperations.WithLabelValues("unlike", "error").Inc()
		return err
	}

	outcome := "noop"
	if removed {
		outcome = "ok"
	}
	observability.LikeOperations.WithLabelValues("unlike", outcome).Inc()
	return nil
}
