package service

import (
	"context"

	"amica/internal/models"
	"amica/internal/store"
)

// LendItemService manages items offered for lending.
type LendItemService struct {
	store *store.Store
}

// NewLendItemService returns a new LendItemService backed by the given store.
func NewLendItemService(st *store.Store) *LendItemService {
	return &LendItemService{store: st}
}

// CreateLendItemInput carries the fields for a new lend offer.
type CreateLendItemInput struct {
	ItemName     string `json:"itemName"`
	Description  string `json:"description"`
	Condition    string `json:"condition"`
	Availability string `json:"availability"`
}

// Create validates the offer and persists it with the "available" status.
func (s *LendItemService) Create(ctx context.Context, ownerID string, in CreateLendItemInput) (*models.LendItem, error) {
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

	item, err := store.Append(s.store, store.LendItems, models.LendItem{
		UserID:       ownerID,
		ItemName:     in.ItemName,
		Description:  in.Description,
		Condition:    in.Condition,
		Availability: in.Availability,
		Status:       models.LendItemStatusAvailable,
	})
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return &item, nil
}

// List returns every lend offer in storage order.
func (s *LendItemService) List(ctx context.Context) ([]models.LendItem, error) {
	items, err := store.ReadAll[models.LendItem](s.store, store.LendItems)
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return items, nil
}

// GetByID returns the offer with the given id.
func (s *LendItemService) GetByID(ctx context.Context, id string) (*models.LendItem, error) {
	item, err := store.FindOne(s.store, store.LendItems, func(i *models.LendItem) bool { return i.ID == id })
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	if item == nil {
		return nil, models.NewNotFoundError("Item")
	}
	return item, nil
}

// UpdateLendItemInput carries the patchable offer fields.
type UpdateLendItemInput struct {
	ItemName     *string `json:"itemName"`
	Description  *string `json:"description"`
	Condition    *string `json:"condition"`
	Availability *string `json:"availability"`
	Status       *string `json:"status"`
}

// UpdateByOwner patches the offer when it exists and belongs to ownerID.
func (s *LendItemService) UpdateByOwner(ctx context.Context, id, ownerID string, in UpdateLendItemInput) (*models.LendItem, error) {
	item, err := store.UpdateWhere(s.store, store.LendItems,
		func(i *models.LendItem) bool { return i.ID == id && i.UserID == ownerID },
		func(i *models.LendItem) {
			applyString(&i.ItemName, in.ItemName)
			applyString(&i.Description, in.Description)
			applyString(&i.Condition, in.Condition)
			applyString(&i.Availability, in.Availability)
			applyString(&i.Status, in.Status)
		})
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	if item == nil {
		return nil, models.NewNotFoundOrUnauthorizedError("Item")
	}
	return item, nil
}

// DeleteByOwner removes the offer when it exists and belongs to ownerID.
func (s *LendItemService) DeleteByOwner(ctx context.Context, id, ownerID string) error {
	removed, err := store.DeleteWhere(s.store, store.LendItems,
		func(i *models.LendItem) bool { return i.ID == id && i.UserID == ownerID })
	if err != nil {
		return wrapStoreErr(err)
	}
	if !removed {
		return models.NewNotFoundOrUnauthorizedError("Item")
	}
	return nil
}
