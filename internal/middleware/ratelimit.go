package middleware

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// RateLimit guards the credential endpoints with a token-bucket limiter
// shared across requests.
func RateLimit(r rate.Limit, burst int) fiber.Handler {
	limiter := rate.NewLimiter(r, burst)

	return func(c *fiber.Ctx) error {
		if !limiter.Allow() {
			return fiber.NewError(fiber.StatusTooManyRequests, "too many requests, please try again later")
		}
		return c.Next()
	}
}
