package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestRateLimiterBurstThenRejects(t *testing.T) {
	app := fiber.New()
	rl := NewRateLimiter(rate.Limit(1), 3)
	app.Get("/ping", rl.Limit(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode, "request %d inside burst", i)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestRateLimiterTracksIPsSeparately(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(1), 1)

	require.True(t, rl.get("10.0.0.1").Allow())
	require.False(t, rl.get("10.0.0.1").Allow())
	// A different client gets its own bucket.
	require.True(t, rl.get("10.0.0.2").Allow())
}

func TestRateLimiterSweepsStaleEntriesOnLookup(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(1), 1)
	rl.get("10.0.0.1")
	rl.get("10.0.0.2")

	rl.mu.Lock()
	rl.limiters["10.0.0.1"].lastSeen = time.Now().Add(-time.Hour)
	rl.lastCleanup = time.Now().Add(-time.Hour)
	rl.mu.Unlock()

	rl.get("10.0.0.3")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	require.NotContains(t, rl.limiters, "10.0.0.1")
	require.Contains(t, rl.limiters, "10.0.0.2")
	require.Contains(t, rl.limiters, "10.0.0.3")
}
