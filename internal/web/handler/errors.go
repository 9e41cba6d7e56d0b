package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const msgInternal = "Internal server error"

// NotFound answers 404 with a message body.
func NotFound(message string) error {
	return fiber.NewError(fiber.StatusNotFound, message)
}

// ErrorHandler is the fiber error handler of the app. Validation errors become
// 400 with message and field, fiber errors keep their code, everything else is
// logged and answered with 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(validationErr)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
	}

	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("request failed")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": msgInternal})
}
