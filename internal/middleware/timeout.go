package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// NewRequestTimeout bounds the user context of each request, which upstream fetches inherit.
func NewRequestTimeout(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if timeout <= 0 {
			return c.Next()
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
