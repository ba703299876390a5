package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"
)

// RateLimiterConfig describes a fixed-window per-IP limiter.
type RateLimiterConfig struct {
	Max     int
	Window  time.Duration
	Message string
}

// NewRateLimiter counts requests per client IP in a TTL cache. Entries
// expire with the window, so counters reset without a sweeper goroutine of
// our own.
func NewRateLimiter(cfg RateLimiterConfig) fiber.Handler {
	if cfg.Message == "" {
		cfg.Message = "too many requests, try again later"
	}
	counters := cache.New(cfg.Window, 10*time.Minute)

	return func(ctx *fiber.Ctx) error {
		key := ctx.IP()

		// Add is a no-op when the counter already exists.
		_ = counters.Add(key, 0, cache.DefaultExpiration)
		count, err := counters.IncrementInt(key, 1)
		if err != nil {
			// Counter expired between Add and Increment; start over.
			counters.Set(key, 1, cache.DefaultExpiration)
			count = 1
		}

		if count > cfg.Max {
			return ctx.Status(fiber.StatusTooManyRequests).
				JSON(ErrorResponse(fiber.StatusTooManyRequests, cfg.Message))
		}
		return ctx.Next()
	}
}
