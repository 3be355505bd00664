package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"persona/internal/config"
	"persona/internal/database"
	"persona/internal/models"
	"persona/internal/repository"
	"persona/internal/service"
	"persona/internal/views"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer wires a full handler stack against a fresh in-memory
// database. No metrics or logging middleware; routes only.
func newTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// A second pooled connection would see a different empty store.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	profileRepo := repository.NewProfileRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	s := &Server{
		config:         &config.Config{Port: "3000"},
		db:             db,
		profileRepo:    profileRepo,
		commentRepo:    commentRepo,
		likeRepo:       likeRepo,
		profileService: service.NewProfileService(profileRepo),
		commentService: service.NewCommentService(commentRepo, profileRepo, likeRepo),
	}

	app := fiber.New(fiber.Config{Views: views.NewEngine()})
	s.SetupRoutes(app)

	t.Cleanup(func() { _ = sqlDB.Close() })

	return s, app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func validProfileBody() map[string]any {
	return map[string]any{
		"name":         "Sherlock Holmes",
		"description":  "Consulting detective",
		"mbti":         "INTP",
		"enneagram":    "5w6",
		"variant":      "sp/sx",
		"tritype":      513,
		"socionics":    "LII",
		"sloan":        "RCOEI",
		"psyche":       "LVEF",
		"temperaments": "Melancholic",
		"image":        "https://example.com/holmes.png",
	}
}

func mustCreateProfile(t *testing.T, app *fiber.App) models.Profile {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/create_profile", validProfileBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeBody[models.Profile](t, resp)
}

func mustCreateComment(t *testing.T, app *fiber.App, profileID uint, body map[string]any) models.Comment {
	t.Helper()
	payload := map[string]any{
		"userId":      "user-1",
		"title":       "A take",
		"description": "A longer take.",
		"profileId":   profileID,
	}
	for k, v := range body {
		payload[k] = v
	}
	resp := doJSON(t, app, http.MethodPost, "/api/comments/create", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeBody[models.Comment](t, resp)
}
