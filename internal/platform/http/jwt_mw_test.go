package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/itssoni10/ELance/internal/platform/security"
)

func protectedApp(jwtMgr *security.JWTManager) *fiber.App {
	app := fiber.New()
	app.Get("/me", JWTAuth(jwtMgr), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId":   c.Locals("user_id"),
			"userType": c.Locals("user_type"),
		})
	})
	return app
}

func TestJWTAuthPassesClaimsThrough(t *testing.T) {
	jwtMgr := security.NewJWTManager("test-secret", time.Hour)
	app := protectedApp(jwtMgr)

	token, err := jwtMgr.Issue("user-1", "recruiter")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "user-1", body["userId"])
	require.Equal(t, "recruiter", body["userType"])
}

func TestJWTAuthRejections(t *testing.T) {
	jwtMgr := security.NewJWTManager("test-secret", time.Hour)
	app := protectedApp(jwtMgr)

	cases := []struct {
		name   string
		header string
		msg    string
	}{
		{"no header", "", "Authorization token required"},
		{"not bearer", "Basic abc123", "Authorization token required"},
		{"garbage token", "Bearer not.a.jwt", "Invalid or expired token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tc.msg, body["message"])
		})
	}
}

func TestJWTAuthRejectsForeignSignature(t *testing.T) {
	app := protectedApp(security.NewJWTManager("real-secret", time.Hour))

	token, err := security.NewJWTManager("other-secret", time.Hour).Issue("user-1", "jobSeeker")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
