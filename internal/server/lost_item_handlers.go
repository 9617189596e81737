package server

import (
	"amica/internal/models"
	"amica/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateLostItem handles POST /api/lost-items
func (s *Server) CreateLostItem(c *fiber.Ctx) error {
	var req service.CreateLostItemInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	item, err := s.lostItemService.Create(c.Context(), currentUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// GetLostItems handles GET /api/lost-items
func (s *Server) GetLostItems(c *fiber.Ctx) error {
	items, err := s.lostItemService.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// GetLostItem handles GET /api/lost-items/:id
func (s *Server) GetLostItem(c *fiber.Ctx) error {
	item, err := s.lostItemService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// UpdateLostItem handles PUT /api/lost-items/:id
func (s *Server) UpdateLostItem(c *fiber.Ctx) error {
	var req service.UpdateLostItemInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	item, err := s.lostItemService.UpdateByOwner(c.Context(), c.Params("id"), currentUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// DeleteLostItem handles DELETE /api/lost-items/:id
func (s *Server) DeleteLostItem(c *fiber.Ctx) error {
	if err := s.lostItemService.DeleteByOwner(c.Context(), c.Params("id"), currentUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Item deleted successfully",
	})
}
