package service

import (
	"context"

	"amica/internal/models"
	"amica/internal/store"
)

// FoundItemService manages found-item reports.
type FoundItemService struct {
	store *store.Store
}

// NewFoundItemService returns a new FoundItemService backed by the given store.
func NewFoundItemService(st *store.Store) *FoundItemService {
	return &FoundItemService{store: st}
}

// CreateFoundItemInput carries the fields for a new found-item report.
type CreateFoundItemInput struct {
	ItemName    string `json:"itemName"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	ContactInfo string `json:"contactInfo"`
}

// Create validates the report and persists it with the "unclaimed" status.
func (s *FoundItemService) Create(ctx context.Context, ownerID string, in CreateFoundItemInput) (*models.FoundItem, error) {
	var violations []string
	if in.ItemName == "" {
		violations = append(violations, "itemName is required")
	}
	if in.Description == "" {
		violations = append(violations, "description is required")
	}
	if in.Location == "" {
		violations = append(violations, "location is required")
	}
	if in.Date == "" {
		violations = append(violations, "date is required")
	}
	if len(violations) > 0 {
		return nil, models.NewValidationErrors(violations)
	}

	item, err := store.Append(s.store, store.FoundItems, models.FoundItem{
		UserID:      ownerID,
		ItemName:    in.ItemName,
		Description: in.Description,
		Location:    in.Location,
		Date:        in.Date,
		ContactInfo: in.ContactInfo,
		Status:      models.FoundItemStatusUnclaimed,
	})
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return &item, nil
}

// List returns every found-item report in storage order.
func (s *FoundItemService) List(ctx context.Context) ([]models.FoundItem, error) {
	items, err := store.ReadAll[models.FoundItem](s.store, store.FoundItems)
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return items, nil
}

// GetByID returns the report with the given id.
func (s *FoundItemService) GetByID(ctx context.Context, id string) (*models.FoundItem, error) {
	item, err := store.FindOne(s.store, store.FoundItems, func(i *models.FoundItem) bool { return i.ID == id })
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	if item == nil {
		return nil, models.NewNotFoundError("Item")
	}
	return item, nil
}

// UpdateFoundItemInput carries the patchable report fields.
type UpdateFoundItemInput struct {
	ItemName    *string `json:"itemName"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Date        *string `json:"date"`
	ContactInfo *string `json:"contactInfo"`
	Status      *string `json:"status"`
}

// UpdateByOwner patches the report when it exists and belongs to ownerID.
func (s *FoundItemService) UpdateByOwner(ctx context.Context, id, ownerID string, in UpdateFoundItemInput) (*models.FoundItem, error) {
	item, err := store.UpdateWhere(s.store, store.FoundItems,
		func(i *models.FoundItem) bool { return i.ID == id && i.UserID == ownerID },
		func(i *models.FoundItem) {
			applyString(&i.ItemName, in.ItemName)
			applyString(&i.Description, in.Description)
			applyString(&i.Location, in.Location)
			applyString(&i.Date, in.Date)
			applyString(&i.ContactInfo, in.ContactInfo)
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

// DeleteByOwner removes the report when it exists and belongs to ownerID.
func (s *FoundItemService) DeleteByOwner(ctx context.Context, id, ownerID string) error {
	removed, err := store.DeleteWhere(s.store, store.FoundItems,
		func(i *models.FoundItem) bool { return i.ID == id && i.UserID == ownerID })
	if err != nil {
		return wrapStoreErr(err)
	}
	if !removed {
		return models.NewNotFoundOrUnauthorizedError("Item")
	}
	return nil
}
