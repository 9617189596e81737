package server

import (
	"amica/internal/models"
	"amica/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/users/profile/:id
func (s *Server) GetProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user.WithoutPassword())
}

// UpdateProfile handles PUT /api/users/profile/:id. Accounts can only edit
// their own profile.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	id := c.Params("id")
	if id != currentUserID(c) {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Cannot update another user's profile"))
	}

	var req service.UpdateProfileInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user.WithoutPassword())
}
