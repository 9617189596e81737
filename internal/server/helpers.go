package server

import (
	"errors"

	"amica/internal/models"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps an application error code to its HTTP status. Conflicts
// use 400 rather than 409 to match the wire contract existing clients expect;
// the CONFLICT code in the body still tells them apart from plain validation
// failures.
func statusForError(err error) int {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case models.CodeValidation, models.CodeConflict:
		return fiber.StatusBadRequest
	case models.CodeUnauthorized:
		return fiber.StatusUnauthorized
	case models.CodeNotFound:
		return fiber.StatusNotFound
	case models.CodeActivityFull:
		return fiber.StatusConflict
	case models.CodeStorageUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes the JSON error response for a service-layer error.
func respondError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, statusForError(err), err)
}

// currentUserID returns the authenticated caller's id from the request
// locals. AuthRequired guarantees it is set on protected routes.
func currentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals("userID").(string)
	return id
}
