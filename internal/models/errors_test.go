package models

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		err := NewNotFoundError("Profile")
		assert.Equal(t, "Profile not found", err.Error())
		assert.Equal(t, CodeNotFound, err.Code)
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped cause", func(t *testing.T) {
		cause := errors.New("disk full")
		err := NewInternalError(cause)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "disk full")
	})
}

func TestRespondWithError(t *testing.T) {
	app := fiber.New()
	app.Get("/app-error", func(c *fiber.Ctx) error {
		return RespondWithError(c, fiber.StatusBadRequest, NewValidationError("Invalid query type"))
	})
	app.Get("/plain-error", func(c *fiber.Ctx) error {
		return RespondWithError(c, fiber.StatusInternalServerError, errors.New("boom"))
	})

	t.Run("app error carries code", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/app-error", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var got ErrorResponse
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "Invalid query type", got.Error)
		assert.Equal(t, CodeValidation, got.Code)
	})

	t.Run("plain error has no code", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/plain-error", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var got ErrorResponse
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "boom", got.Error)
		assert.Empty(t, got.Code)
	})
}
