package server

import (
	"errors"
	"strings"

	"mentorly/internal/models"

	"github.com/gofiber/fiber/v2"
)

// respondServiceError writes AppErrors with their mapped status and hands
// anything else to the app's ErrorHandler.
func respondServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}
	return err
}

// pathParam returns a trimmed route parameter. Ids are opaque strings; a
// malformed one simply matches nothing and yields 404 further down.
func pathParam(c *fiber.Ctx, name string) string {
	return strings.TrimSpace(c.Params(name))
}

func badRequest(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, fiber.StatusBadRequest, err)
}
