package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const (
	cleanupInterval = 5 * time.Minute
	staleAfter      = 10 * time.Minute
)

// RateLimiter is a per-IP token-bucket limiter. Stale entries are swept
// lazily on lookup, so no background goroutine is needed.
type RateLimiter struct {
	mu          sync.Mutex
	limiters    map[string]*ipLimiter
	r           rate.Limit
	burst       int
	lastCleanup time.Time
}

// NewRateLimiter creates a per-IP limiter: r requests/second, burst up to burst requests.
func NewRateLimiter(r rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		limiters:    make(map[string]*ipLimiter),
		r:           r,
		burst:       burst,
		lastCleanup: time.Now(),
	}
}

func (rl *RateLimiter) get(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastCleanup) > cleanupInterval {
		for k, v := range rl.limiters {
			if now.Sub(v.lastSeen) > staleAfter {
				delete(rl.limiters, k)
			}
		}
		rl.lastCleanup = now
	}

	if v, ok := rl.limiters[ip]; ok {
		v.lastSeen = now
		return v.limiter
	}
	l := rate.NewLimiter(rl.r, rl.burst)
	rl.limiters[ip] = &ipLimiter{limiter: l, lastSeen: now}
	return l
}

// Limit enforces the rate limit keyed on the remote IP.
func (rl *RateLimiter) Limit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !rl.get(c.IP()).Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many requests",
			})
		}
		return c.Next()
	}
}
