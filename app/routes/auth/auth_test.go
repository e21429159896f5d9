package auth

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"cat-tracker/app/domain"
	"cat-tracker/app/models"
	"cat-tracker/app/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededTracker(t *testing.T) *domain.Tracker {
	t.Helper()
	tracker, err := domain.NewTracker(store.New(filepath.Join(t.TempDir(), "data.json")))
	require.NoError(t, err)
	return tracker
}

func TestJWT_RoundTrip(t *testing.T) {
	session := &models.Session{Handle: "student1", Name: "Rahul Sharma", Role: models.RoleStudent}

	token, err := GenerateJWT(session)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "student1", claims.Handle)
	assert.Equal(t, "Rahul Sharma", claims.Name)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateJWT_Garbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func TestLoginAPI(t *testing.T) {
	tracker := seededTracker(t)
	app := fiber.New()
	SetupAuthRoutes(app, tracker)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "unknown handle reports not found, never wrong password",
			body:       `{"userId":"nonexistent","password":"admin123"}`,
			wantStatus: 401,
			wantError:  "User ID not found",
		},
		{
			name:       "wrong password",
			body:       `{"userId":"student1","password":"nope"}`,
			wantStatus: 401,
			wantError:  "Invalid password",
		},
		{
			name:       "missing fields",
			body:       `{"userId":"","password":""}`,
			wantStatus: 400,
			wantError:  "Please enter both User ID and Password",
		},
		{
			name:       "success",
			body:       `{"userId":"student1","password":"pass123"}`,
			wantStatus: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var payload map[string]interface{}
			require.NoError(t, json.Unmarshal(raw, &payload))

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, payload["error"])
				return
			}
			assert.Equal(t, "Login successful", payload["message"])

			var sawCookie bool
			for _, cookie := range resp.Cookies() {
				if cookie.Name == "jwt_token" && cookie.Value != "" {
					sawCookie = true
				}
			}
			assert.True(t, sawCookie, "expected a jwt_token cookie")
		})
	}
}

func TestMiddleware_RejectsDeletedAccount(t *testing.T) {
	tracker := seededTracker(t)

	app := fiber.New()
	api := app.Group("/api")
	api.Use(Middleware(tracker))
	api.Get("/ping", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	token, err := GenerateJWT(&models.Session{Handle: "student3", Name: "Amit Kumar", Role: models.RoleStudent})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	// The token stays valid but the account is gone: access is refused.
	require.NoError(t, tracker.DeleteAccount("student3"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestMiddleware_RequireRole(t *testing.T) {
	tracker := seededTracker(t)

	app := fiber.New()
	api := app.Group("/api/admin")
	api.Use(Middleware(tracker))
	api.Use(RequireRole(models.RoleAdmin))
	api.Get("/ping", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	studentToken, err := GenerateJWT(&models.Session{Handle: "student1", Name: "Rahul Sharma", Role: models.RoleStudent})
	require.NoError(t, err)
	adminToken, err := GenerateJWT(&models.Session{Handle: "admin", Name: "System Administrator", Role: models.RoleAdmin})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
