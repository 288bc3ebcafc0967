package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/skills-assessment-api/internal/utils"
)

// NotFound answers every request that matched no route.
func NotFound(c *fiber.Ctx) error {
	return utils.SendError(c, fiber.StatusNotFound, "Endpoint not found")
}

// ErrorHandler renders errors that escaped a handler, including recovered panics, as
// {"error": ...} bodies.
func ErrorHandler(logger zerolog.Logger) fiber.ErrorHandler {
	logger = logger.With().Str("component", "error_handler").Logger()

	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			switch fiberErr.Code {
			case fiber.StatusNotFound:
				return NotFound(c)
			case fiber.StatusInternalServerError:
			default:
				return utils.SendError(c, fiberErr.Code, fiberErr.Message)
			}
		}

		requestLogger(logger, c).Error().Err(err).Msg("unhandled error")
		return utils.SendError(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
