package server

import (
	"amica/internal/models"
	"amica/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateFoundItem handles POST /api/found-items
func (s *Server) CreateFoundItem(c *fiber.Ctx) error {
	var req service.CreateFoundItemInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	item, err := s.foundItemService.Create(c.Context(), currentUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// GetFoundItems handles GET /api/found-items
func (s *Server) GetFoundItems(c *fiber.Ctx) error {
	items, err := s.foundItemService.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// GetFoundItem handles GET /api/found-items/:id
func (s *Server) GetFoundItem(c *fiber.Ctx) error {
	item, err := s.foundItemService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// UpdateFoundItem handles PUT /api/found-items/:id
func (s *Server) UpdateFoundItem(c *fiber.Ctx) error {
	var req service.UpdateFoundItemInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	item, err := s.foundItemService.UpdateByOwner(c.Context(), c.Params("id"), currentUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// DeleteFoundItem handles DELETE /api/found-items/:id
func (s *Server) DeleteFoundItem(c *fiber.Ctx) error {
	if err := s.foundItemService.DeleteByOwner(c.Context(), c.Params("id"), currentUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Item deleted successfully",
	})
}
