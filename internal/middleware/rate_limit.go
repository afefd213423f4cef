package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimit creates a per-client rate limiter, keyed by user when a
// session is loaded and by IP otherwise. Used on the credential routes.
func RateLimit(identifier string, max int, window time.Duration) fiber.Handler {
	if max <= 0 {
		max = 10
	}
	if window <= 0 {
		window = time.Second
	}

	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			key := c.IP()
			if userID := c.Locals(LocalsUserID); userID != nil {
				key = fmt.Sprintf("%v", userID)
			}
			return fmt.Sprintf("%s:%s", identifier, key)
		},
	})
}
