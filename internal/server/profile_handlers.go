package server

import (
	"persona/internal/middleware"
	"persona/internal/models"
	"persona/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createProfileRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	MBTI         string `json:"mbti"`
	Enneagram    string `json:"enneagram"`
	Variant      string `json:"variant"`
	Tritype      int    `json:"tritype"`
	Socionics    string `json:"socionics"`
	Sloan        string `json:"sloan"`
	Psyche       string `json:"psyche"`
	Temperaments string `json:"temperaments"`
	Image        string `json:"image"`
}

// GetProfile renders the server-side profile page. This is the only
// endpoint producing HTML instead of JSON.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	id, err := parseID(c, "id", "Invalid profile ID")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	profile, err := s.profileService.GetProfile(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Render("profile", fiber.Map{
		"Profile": profile,
	})
}

// CreateProfile handles new profile submissions.
func (s *Server) CreateProfile(c *fiber.Ctx) error {
	var req createProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.CreateProfile(c.UserContext(), service.CreateProfileInput{
		Name:         req.Name,
		Description:  req.Description,
		MBTI:         req.MBTI,
		Enneagram:    req.Enneagram,
		Variant:      req.Variant,
		Tritype:      req.Tritype,
		Socionics:    req.Socionics,
		Sloan:        req.Sloan,
		Psyche:       req.Psyche,
		Temperaments: req.Temperaments,
		Image:        req.Image,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "profile created",
		"profile_id", profile.ID,
		"name", profile.Name)

	return c.Status(fiber.StatusCreated).JSON(profile)
}
