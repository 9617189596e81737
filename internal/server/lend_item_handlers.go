package server

import (
	"amica/internal/models"
	"amica/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateLendItem handles POST /api/lend-items
func (s *Server) CreateLendItem(c *fiber.Ctx) error {
	var req service.CreateLendItemInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	item, err := s.lendItemService.Create(c.Context(), currentUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// GetLendItems handles GET /api/lend-items
func (s *Server) GetLendItems(c *fiber.Ctx) error {
	items, err := s.lendItemService.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// GetLendItem handles GET /api/lend-items/:id
func (s *Server) GetLendItem(c *fiber.Ctx) error {
	item, err := s.lendItemService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// UpdateLendItem handles PUT /api/lend-items/:id
func (s *Server) UpdateLendItem(c *fiber.Ctx) error {
	var req service.UpdateLendItemInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	item, err := s.lendItemService.UpdateByOwner(c.Context(), c.Params("id"), currentUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// DeleteLendItem handles DELETE /api/lend-items/:id
func (s *Server) DeleteLendItem(c *fiber.Ctx) error {
	if err := s.lendItemService.DeleteByOwner(c.Context(), c.Params("id"), currentUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Item deleted successfully",
	})
}
