package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorHandler maps errors to JSON responses. Anything that is not a
// deliberate fiber error is logged and surfaced as a generic 500 so store
// internals never reach the caller.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"success": false,
			"detail":  fiberErr.Message,
		})
	}

	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("request failed")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"detail":  "internal server error",
	})
}
