package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/modboard/backend/internal/ai"
	"github.com/modboard/backend/internal/config"
	"github.com/modboard/backend/internal/dto"
	"github.com/modboard/backend/internal/handlers"
	"github.com/modboard/backend/internal/models"
	"github.com/modboard/backend/internal/routes"
	"github.com/modboard/backend/internal/services"
	"github.com/modboard/backend/internal/store"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.FlaggedItem{}))

	cfg := &config.Config{
		Environment:       "test",
		PrometheusEnabled: false,
	}

	flagService := services.NewFlagService(store.NewGormStore(db), ai.NewRuleService())
	flagHandler := handlers.NewFlagHandler(flagService)
	healthHandler := handlers.NewHealthHandler(db, cfg)

	app := fiber.New()
	routes.Setup(app, cfg, flagHandler, healthHandler, prometheus.NewRegistry())
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeItem(t *testing.T, resp *http.Response) models.FlaggedItem {
	t.Helper()
	var item models.FlaggedItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&item))
	return item
}

func createFlag(t *testing.T, app *fiber.App, contentType, content string) models.FlaggedItem {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodPost, "/api/flags", dto.CreateFlagRequest{
		ContentType: contentType,
		Content:     content,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decodeItem(t, resp)
}

func TestCreateFlag(t *testing.T) {
	app := newTestApp(t)

	item := createFlag(t, app, "message", "This is a test message")

	assert.NotZero(t, item.ID)
	assert.Equal(t, models.ContentTypeMessage, item.ContentType)
	assert.Equal(t, "This is a test message", item.Content)
	assert.Equal(t, models.PriorityLow, item.Priority)
	assert.Equal(t, models.StatusPending, item.Status)
	assert.True(t, strings.HasPrefix(item.AISummary, "Flagged message:"))
	assert.False(t, item.CreatedAt.IsZero())
}

func TestCreateFlagHighPriority(t *testing.T) {
	app := newTestApp(t)

	item := createFlag(t, app, "message", "This contains violence and threats")
	assert.Equal(t, models.PriorityHigh, item.Priority)
}

func TestCreateFlagMediumPriority(t *testing.T) {
	app := newTestApp(t)

	item := createFlag(t, app, "message", "This is spam content")
	assert.Equal(t, models.PriorityMedium, item.Priority)
}

func TestCreateFlagValidation(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		name string
		body dto.CreateFlagRequest
	}{
		{"whitespace only content", dto.CreateFlagRequest{ContentType: "message", Content: "   "}},
		{"oversized content", dto.CreateFlagRequest{ContentType: "message", Content: strings.Repeat("a", 10001)}},
		{"bad content type", dto.CreateFlagRequest{ContentType: "video", Content: "hello"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, fiber.MethodPost, "/api/flags", tc.body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.True(t, body.Error)
			assert.NotEmpty(t, body.Message)
		})
	}

	// No record was persisted by any rejected request.
	resp := doJSON(t, app, fiber.MethodGet, "/api/flags", nil)
	var items []models.FlaggedItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	assert.Empty(t, items)
}

func TestCreateFlagMalformedBody(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodPost, "/api/flags", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetFlags(t *testing.T) {
	app := newTestApp(t)

	createFlag(t, app, "message", "first")
	createFlag(t, app, "report", "second")

	resp := doJSON(t, app, fiber.MethodGet, "/api/flags", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var items []models.FlaggedItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Content, "newest first")
	assert.Equal(t, "first", items[1].Content)
}

func TestGetFlagByID(t *testing.T) {
	app := newTestApp(t)

	created := createFlag(t, app, "message", "fetch me")

	resp := doJSON(t, app, fiber.MethodGet, "/api/flags/"+strconv.Itoa(int(created.ID)), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	got := decodeItem(t, resp)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "fetch me", got.Content)
}

func TestGetFlagNotFound(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/flags/999", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetFlagInvalidID(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/flags/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateFlagStatus(t *testing.T) {
	app := newTestApp(t)

	created := createFlag(t, app, "message", "review me for spam")
	time.Sleep(20 * time.Millisecond)

	resp := doJSON(t, app, fiber.MethodPatch, "/api/flags/"+strconv.Itoa(int(created.ID)), dto.UpdateFlagRequest{Status: "approved"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	updated := decodeItem(t, resp)
	assert.Equal(t, models.StatusApproved, updated.Status)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	// Derived fields are never recomputed on update.
	assert.Equal(t, created.Priority, updated.Priority)
	assert.Equal(t, created.AISummary, updated.AISummary)
	assert.Equal(t, created.Content, updated.Content)
}

func TestUpdateFlagStatusValidation(t *testing.T) {
	app := newTestApp(t)

	created := createFlag(t, app, "message", "hello")

	resp := doJSON(t, app, fiber.MethodPatch, "/api/flags/"+strconv.Itoa(int(created.ID)), dto.UpdateFlagRequest{Status: "archived"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateFlagStatusNotFound(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPatch, "/api/flags/999", dto.UpdateFlagRequest{Status: "approved"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteFlag(t *testing.T) {
	app := newTestApp(t)

	created := createFlag(t, app, "image", "some image report")
	path := "/api/flags/" + strconv.Itoa(int(created.ID))

	resp := doJSON(t, app, fiber.MethodDelete, path, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, path, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, path, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestStats(t *testing.T) {
	app := newTestApp(t)

	createFlag(t, app, "message", "contains weapon talk")
	createFlag(t, app, "message", "spam spam spam")
	harmless := createFlag(t, app, "report", "harmless")

	doJSON(t, app, fiber.MethodPatch, "/api/flags/"+strconv.Itoa(int(harmless.ID)), dto.UpdateFlagRequest{Status: "rejected"})

	resp := doJSON(t, app, fiber.MethodGet, "/api/stats", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stats models.FlagStats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))

	assert.EqualValues(t, 3, stats.TotalFlags)
	assert.EqualValues(t, 1, stats.HighPriority)
	assert.EqualValues(t, 1, stats.MediumPriority)
	assert.EqualValues(t, 1, stats.LowPriority)
	assert.EqualValues(t, 2, stats.PendingStatus)
	assert.EqualValues(t, 1, stats.RejectedStatus)
	assert.Equal(t, stats.TotalFlags, stats.HighPriority+stats.MediumPriority+stats.LowPriority)
	assert.Equal(t, stats.TotalFlags, stats.PendingStatus+stats.ApprovedStatus+stats.RejectedStatus+stats.EscalatedStatus)
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/health", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var health dto.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "moderation-dashboard", health.Service)

	resp = doJSON(t, app, fiber.MethodGet, "/ready", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
