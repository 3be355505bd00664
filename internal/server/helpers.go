package server

import (
	"errors"
	"strconv"

	"persona/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// parsePageLimit reads the page/limit query params, falling back to the
// defaults on anything non-numeric or non-positive.
func parsePageLimit(c *fiber.Ctx) (page, limit int) {
	page = defaultPage
	limit = defaultLimit

	if raw := c.Query("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	return page, limit
}

// parseID extracts a positive numeric ID from the named route param.
// invalidMsg is the client-facing message for a malformed value.
func parseID(c *fiber.Ctx, param, invalidMsg string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		return 0, models.NewValidationError(invalidMsg)
	}
	return uint(id), nil
}

// respondServiceError maps service-layer AppError codes onto HTTP statuses.
// Anything without a code is treated as an internal error.
func respondServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeNotFound:
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		case models.CodeValidation:
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		case models.CodeConflict:
			return models.RespondWithError(c, fiber.StatusConflict, appErr)
		}
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
}
