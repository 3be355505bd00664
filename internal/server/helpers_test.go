package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"persona/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageLimit(t *testing.T) {
	app := fiber.New()

	var gotPage, gotLimit int
	app.Get("/items", func(c *fiber.Ctx) error {
		gotPage, gotLimit = parsePageLimit(c)
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 10},
		{"explicit", "?page=3&limit=25", 3, 25},
		{"non numeric falls back", "?page=two&limit=ten", 1, 10},
		{"non positive falls back", "?page=0&limit=-5", 1, 10},
		{"no upper cap", "?limit=500", 1, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items"+tt.query, nil))
			require.NoError(t, err)
			_ = resp.Body.Close()
			assert.Equal(t, tt.wantPage, gotPage)
			assert.Equal(t, tt.wantLimit, gotLimit)
		})
	}
}

func TestRespondServiceError(t *testing.T) {
	app := fiber.New()

	var current error
	app.Get("/err", func(c *fiber.Ctx) error {
		return respondServiceError(c, current)
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", models.NewNotFoundError("Profile"), http.StatusNotFound},
		{"validation", models.NewValidationError("bad input"), http.StatusBadRequest},
		{"conflict", models.NewConflictError("already there"), http.StatusConflict},
		{"internal", models.NewInternalError(errors.New("boom")), http.StatusInternalServerError},
		{"untyped", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current = tt.err
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/err", nil))
			require.NoError(t, err)
			_ = resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
