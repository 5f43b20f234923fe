package http

import (
	"errors"
	"log/slog"

	"resume-builder/internal/model"
	"resume-builder/internal/style"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler answers every handler error as {"error": "..."}. An export or
// print with nothing rendered answers 204 with no body.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var failure *usecase.Failure
	var ferr *fiber.Error

	switch {
	case errors.Is(err, usecase.ErrNoSurface):
		return c.SendStatus(fiber.StatusNoContent)
	case errors.As(err, &failure):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": failure.Message})
	case errors.As(err, &ferr):
		return c.Status(ferr.Code).JSON(fiber.Map{"error": ferr.Message})
	}

	code := statusFor(err)
	if code == fiber.StatusInternalServerError {
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		return c.Status(code).JSON(fiber.Map{"error": "internal error"})
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound), errors.Is(err, style.ErrUnknownStyle):
		return fiber.StatusNotFound
	case errors.Is(err, usecase.ErrSectionDisabled):
		return fiber.StatusConflict
	case errors.Is(err, model.ErrUnknownSection),
		errors.Is(err, model.ErrUnknownField),
		errors.Is(err, model.ErrIndexOutOfRange),
		errors.Is(err, model.ErrInvalidDocument),
		errors.Is(err, usecase.ErrUnknownFormat):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
