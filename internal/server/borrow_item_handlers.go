package server

import (
	"amica/internal/models"
	"amica/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateBorrowRequest handles POST /api/borrow-items
func (s *Server) CreateBorrowRequest(c *fiber.Ctx) error {
	var req service.CreateBorrowRequestInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	request, err := s.borrowRequestService.Create(c.Context(), currentUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

// GetBorrowRequests handles GET /api/borrow-items
func (s *Server) GetBorrowRequests(c *fiber.Ctx) error {
	requests, err := s.borrowRequestService.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(requests)
}

// GetBorrowRequest handles GET /api/borrow-items/:id
func (s *Server) GetBorrowRequest(c *fiber.Ctx) error {
	request, err := s.borrowRequestService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(request)
}

// UpdateBorrowRequest handles PUT /api/borrow-items/:id
func (s *Server) UpdateBorrowRequest(c *fiber.Ctx) error {
	var req service.UpdateBorrowRequestInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	request, err := s.borrowRequestService.UpdateByOwner(c.Context(), c.Params("id"), currentUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(request)
}

// DeleteBorrowRequest handles DELETE /api/borrow-items/:id
func (s *Server) DeleteBorrowRequest(c *fiber.Ctx) error {
	if err := s.borrowRequestService.DeleteByOwner(c.Context(), c.Params("id"), currentUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Request deleted successfully",
	})
}
