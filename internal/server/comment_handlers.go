package server

import (
	"errors"

	"persona/internal/middleware"
	"persona/internal/models"
	"persona/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createCommentRequest struct {
	UserID      string `json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ProfileID   uint   `json:"profileId"`
	MBTI        string `json:"mbti"`
	Enneagram   string `json:"enneagram"`
	Zodiac      string `json:"zodiac"`
}

type likeRequest struct {
	CommentID uint   `json:"commentId"`
	UserID    string `json:"userId"`
}

// QueryComments returns every comment tagged with a valid value of the
// taxonomy named by the q parameter.
func (s *Server) QueryComments(c *fiber.Ctx) error {
	kind := models.TaxonomyKind(c.Query("q"))

	comments, err := s.commentService.QueryByTaxonomy(c.UserContext(), kind)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(comments)
}

// GetRecentComments returns a page of comments, newest first.
func (s *Server) GetRecentComments(c *fiber.Ctx) error {
	page, limit := parsePageLimit(c)

	comments, err := s.commentService.ListRecent(c.UserContext(), page, limit)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(comments)
}

// GetMostLikedComments returns a page of comments ordered by like count.
func (s *Server) GetMostLikedComments(c *fiber.Ctx) error {
	page, limit := parsePageLimit(c)

	comments, err := s.commentService.ListMostLiked(c.UserContext(), page, limit)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(comments)
}

// GetCommentDetail returns a single comment by id.
func (s *Server) GetCommentDetail(c *fiber.Ctx) error {
	id, err := parseID(c, "id", "Invalid comment ID")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	comment, err := s.commentService.GetComment(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(comment)
}

// CreateComment attaches a new comment to an existing profile. A missing
// profile is a client error on this endpoint, not a 404.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.UserContext(), service.CreateCommentInput{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		ProfileID:   req.ProfileID,
		MBTI:        req.MBTI,
		Enneagram:   req.Enneagram,
		Zodiac:      req.Zodiac,
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		}
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "comment created",
		"comment_id", comment.ID,
		"profile_id", comment.ProfileID)

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// LikeComment records one like per (comment, user) pair. A repeat like is
// rejected as a client error with the like count untouched.
func (s *Server) LikeComment(c *fiber.Ctx) error {
	var req likeRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.CommentID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid comment ID"))
	}

	if err := s.commentService.LikeComment(c.UserContext(), req.CommentID, req.UserID); err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeConflict {
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		}
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Comment liked successfully",
	})
}

// UnlikeComment removes the like for the (comment, user) pair if one
// exists. Unliking a never-liked comment succeeds without changing the
// like count.
func (s *Server) UnlikeComment(c *fiber.Ctx) error {
	var req likeRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.CommentID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid comment ID"))
	}

	if err := s.commentService.UnlikeComment(c.UserContext(), req.CommentID, req.UserID); err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Comment unliked successfully",
	})
}
