package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecocycle-service/services"
	"ecocycle-service/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *services.RecyclingService) {
	t.Helper()
	db := testutil.OpenTestDB(t)
	catalog := services.NewCatalogService(db)
	require.NoError(t, catalog.Seed())
	recycling := services.NewRecyclingService(db, catalog)

	app := fiber.New()
	SetupRecycleRoutes(app, recycling, catalog)
	SetupStatsRoutes(app, services.NewAnalyticsService(db), services.NewRecordService(db))
	return app, recycling
}

func doJSON(t *testing.T, app *fiber.App, method, path, userID string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestRecycleEndpoint(t *testing.T) {
	app, recycling := newTestApp(t)
	user, err := recycling.CreateUser("greta")
	require.NoError(t, err)

	resp, raw := doJSON(t, app, http.MethodPost, "/recycle", user.ID, fiber.Map{"item": "Plastic Bottle"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result services.RecycleResult
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, "plastic bottle", result.Item)
	assert.Equal(t, 5, result.Points)
	assert.Equal(t, "Plastic", result.Category)
	assert.Equal(t, 5, result.User.Points)
}

func TestRecycleUnknownItemEndpoint(t *testing.T) {
	app, recycling := newTestApp(t)
	user, err := recycling.CreateUser("greta")
	require.NoError(t, err)

	resp, raw := doJSON(t, app, http.MethodPost, "/recycle", user.ID, fiber.Map{"item": "mystery gadget"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result services.RecycleResult
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, 0, result.Points)
	assert.Equal(t, services.UnknownItemCategory, result.Category)
}

func TestRecycleRequiresUserContext(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/recycle", "", fiber.Map{"item": "paper"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRecycleUnknownUserIs404(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/recycle", "missing-id", fiber.Map{"item": "paper"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSearchEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/search?q=bottle", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var results []services.ItemSummary
	require.NoError(t, json.Unmarshal(raw, &results))
	assert.Len(t, results, 2)
}

func TestCreateUserEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/users", "", fiber.Map{"username": "arne"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var user struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Level    int    `json:"level"`
	}
	require.NoError(t, json.Unmarshal(raw, &user))
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "arne", user.Username)
	assert.Equal(t, 1, user.Level)

	resp, _ = doJSON(t, app, http.MethodPost, "/users", "", fiber.Map{"username": "  "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUserStatsEndpoint(t *testing.T) {
	app, recycling := newTestApp(t)
	user, err := recycling.CreateUser("greta")
	require.NoError(t, err)
	_, err = recycling.Recycle(user.ID, "paper")
	require.NoError(t, err)

	resp, raw := doJSON(t, app, http.MethodGet, "/user/stats", user.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats services.UserStats
	require.NoError(t, json.Unmarshal(raw, &stats))
	assert.Equal(t, int64(3), stats.TotalPoints)
	assert.Equal(t, int64(1), stats.TotalItems)
	assert.Equal(t, "paper", stats.MostRecycledItem)

	resp, _ = doJSON(t, app, http.MethodGet, "/user/stats", "missing-id", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUserRecordsEndpoint(t *testing.T) {
	app, recycling := newTestApp(t)
	user, err := recycling.CreateUser("greta")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := recycling.Recycle(user.ID, "aluminum can")
		require.NoError(t, err)
	}

	resp, raw := doJSON(t, app, http.MethodGet, "/user/records?page=1&per_page=2", user.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page services.RecordPage
	require.NoError(t, json.Unmarshal(raw, &page))
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.Pages)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Len(t, page.Records, 2)
}

func TestCommunityStatsEndpoint(t *testing.T) {
	app, recycling := newTestApp(t)
	user, err := recycling.CreateUser("greta")
	require.NoError(t, err)
	_, err = recycling.Recycle(user.ID, "glass bottle")
	require.NoError(t, err)

	resp, raw := doJSON(t, app, http.MethodGet, "/community/stats", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats services.CommunityStats
	require.NoError(t, json.Unmarshal(raw, &stats))
	assert.Equal(t, int64(1), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalRecycled)
	assert.Equal(t, int64(6), stats.TotalPointsEarned)
	require.Len(t, stats.TopRecyclers, 1)
	assert.Equal(t, "greta", stats.TopRecyclers[0].Username)
}

func TestCategoryDistributionEndpoint(t *testing.T) {
	app, recycling := newTestApp(t)
	alice, err := recycling.CreateUser("alice")
	require.NoError(t, err)
	bob, err := recycling.CreateUser("bob")
	require.NoError(t, err)
	_, err = recycling.Recycle(alice.ID, "paper")
	require.NoError(t, err)
	_, err = recycling.Recycle(bob.ID, "battery")
	require.NoError(t, err)

	// Community-wide when no user context is forwarded.
	resp, raw := doJSON(t, app, http.MethodGet, "/categories/distribution", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var dist map[string]int64
	require.NoError(t, json.Unmarshal(raw, &dist))
	assert.Equal(t, map[string]int64{"Paper": 1, "Hazardous": 1}, dist)

	// Scoped when the gateway forwards an identity.
	resp, raw = doJSON(t, app, http.MethodGet, "/categories/distribution", alice.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	dist = nil // json.Unmarshal merges into a non-nil map; start fresh
	require.NoError(t, json.Unmarshal(raw, &dist))
	assert.Equal(t, map[string]int64{"Paper": 1}, dist)
}

func TestCategoriesEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/categories", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cats []struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	require.NoError(t, json.Unmarshal(raw, &cats))
	assert.Len(t, cats, 7)
}
