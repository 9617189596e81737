package service

import (
	"context"

	"amica/internal/models"
	"amica/internal/store"
)

// BorrowRequestService manages requests to borrow items from the community.
type BorrowRequestService struct {
	store *store.Store
}

// NewBorrowRequestService returns a new BorrowRequestService backed by the given store.
func NewBorrowRequestService(st *store.Store) *BorrowRequestService {
	return &BorrowRequestService{store: st}
}

// CreateBorrowRequestInput carries the fields for a new borrow request.
type CreateBorrowRequestInput struct {
	ItemName    string `json:"itemName"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Purpose     string `json:"purpose"`
}

// Create validates the request and persists it with the "open" status.
func (s *BorrowRequestService) Create(ctx context.Context, ownerID string, in CreateBorrowRequestInput) (*models.BorrowRequest, error) {
	var violations []string
	if in.ItemName == "" {
		violations = append(violations, "itemName is required")
	}
	if in.Description == "" {
		violations = append(violations, "description is required")
	}
	if len(violations) > 0 {
		return nil, models.NewValidationErrors(violations)
	}

	req, err := store.Append(s.store, store.BorrowRequests, models.BorrowRequest{
		UserID:      ownerID,
		ItemName:    in.ItemName,
		Description: in.Description,
		Duration:    in.Duration,
		Purpose:     in.Purpose,
		Status:      models.BorrowRequestStatusOpen,
	})
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return &req, nil
}

// List returns every borrow request in storage order.
func (s *BorrowRequestService) List(ctx context.Context) ([]models.BorrowRequest, error) {
	reqs, err := store.ReadAll[models.BorrowRequest](s.store, store.BorrowRequests)
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return reqs, nil
}

// GetByID returns the request with the given id.
func (s *BorrowRequestService) GetByID(ctx context.Context, id string) (*models.BorrowRequest, error) {
	req, err := store.FindOne(s.store, store.BorrowRequests, func(r *models.BorrowRequest) bool { return r.ID == id })
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	if req == nil {
		return nil, models.NewNotFoundError("Request")
	}
	return req, nil
}

// UpdateBorrowRequestInput carries the patchable request fields.
type UpdateBorrowRequestInput struct {
	ItemName    *string `json:"itemName"`
	Description *string `json:"description"`
	Duration    *string `json:"duration"`
	Purpose     *string `json:"purpose"`
	Status      *string `json:"status"`
}

// UpdateByOwner patches the request when it exists and belongs to ownerID.
func (s *BorrowRequestService) UpdateByOwner(ctx context.Context, id, ownerID string, in UpdateBorrowRequestInput) (*models.BorrowRequest, error) {
	req, err := store.UpdateWhere(s.store, store.BorrowRequests,
		func(r *models.BorrowRequest) bool { return r.ID == id && r.UserID == ownerID },
		func(r *models.BorrowRequest) {
			applyString(&r.ItemName, in.ItemName)
			applyString(&r.Description, in.Description)
			applyString(&r.Duration, in.Duration)
			applyString(&r.Purpose, in.Purpose)
			applyString(&r.Status, in.Status)
		})
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	if req == nil {
		return nil, models.NewNotFoundOrUnauthorizedError("Request")
	}
	return req, nil
}

// DeleteByOwner removes the request when it exists and belongs to ownerID.
func (s *BorrowRequestService) DeleteByOwner(ctx context.Context, id, ownerID string) error {
	removed, err := store.DeleteWhere(s.store, store.BorrowRequests,
		func(r *models.BorrowRequest) bool { return r.ID == id && r.UserID == ownerID })
	if err != nil {
		return wrapStoreErr(err)
	}
	if !removed {
		return models.NewNotFoundOrUnauthorizedError("Request")
	}
	return nil
}
