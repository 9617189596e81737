package server

import (
	"amica/internal/models"
	"amica/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateActivity handles POST /api/activities
func (s *Server) CreateActivity(c *fiber.Ctx) error {
	var req service.CreateActivityInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	activity, err := s.activityService.Create(c.Context(), currentUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(activity)
}

// GetActivities handles GET /api/activities
func (s *Server) GetActivities(c *fiber.Ctx) error {
	activities, err := s.activityService.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(activities)
}

// GetActivity handles GET /api/activities/:id
func (s *Server) GetActivity(c *fiber.Ctx) error {
	activity, err := s.activityService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(activity)
}

// UpdateActivity handles PUT /api/activities/:id
func (s *Server) UpdateActivity(c *fiber.Ctx) error {
	var req service.UpdateActivityInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	activity, err := s.activityService.UpdateByOwner(c.Context(), c.Params("id"), currentUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(activity)
}

// DeleteActivity handles DELETE /api/activities/:id
func (s *Server) DeleteActivity(c *fiber.Ctx) error {
	if err := s.activityService.DeleteByOwner(c.Context(), c.Params("id"), currentUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Activity deleted successfully",
	})
}

// JoinActivity handles POST /api/activities/:id/join
func (s *Server) JoinActivity(c *fiber.Ctx) error {
	activity, err := s.activityService.Join(c.Context(), c.Params("id"), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(activity)
}

// LeaveActivity handles POST /api/activities/:id/leave
func (s *Server) LeaveActivity(c *fiber.Ctx) error {
	activity, err := s.activityService.Leave(c.Context(), c.Params("id"), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(activity)
}
