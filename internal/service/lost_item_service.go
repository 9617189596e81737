package service

import (
	"context"

	"amica/internal/models"
	"amica/internal/store"
)

// LostItemService manages lost-item reports.
type LostItemService struct {
	store *store.Store
}

// NewLostItemService returns a new LostItemService backed by the given store.
func NewLostItemService(st *store.Store) *LostItemService {
	return &LostItemService{store: st}
}

// CreateLostItemInput carries the fields for a new lost-item report.
type CreateLostItemInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	Image       string `json:"image"`
}

// Create validates the report and persists it with the "lost" status.
func (s *LostItemService) Create(ctx context.Context, ownerID string, in CreateLostItemInput) (*models.LostItem, error) {
	var violations []string
	if in.Title == "" {
		violations = append(violations, "title is required")
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

	item, err := store.Append(s.store, store.LostItems, models.LostItem{
		UserID:      ownerID,
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Date:        in.Date,
		Category:    in.Category,
		Image:       in.Image,
		Status:      models.LostItemStatusLost,
	})
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return &item, nil
}

// List returns every lost-item report in storage order.
func (s *LostItemService) List(ctx context.Context) ([]models.LostItem, error) {
	items, err := store.ReadAll[models.LostItem](s.store, store.LostItems)
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return items, nil
}

// GetByID returns the report with the given id.
func (s *LostItemService) GetByID(ctx context.Context, id string) (*models.LostItem, error) {
	item, err := store.FindOne(s.store, store.LostItems, func(i *models.LostItem) bool { return i.ID == id })
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	if item == nil {
		return nil, models.NewNotFoundError("Item")
	}
	return item, nil
}

// UpdateLostItemInput carries the patchable report fields.
type UpdateLostItemInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Date        *string `json:"date"`
	Category    *string `json:"category"`
	Image       *string `json:"image"`
	Status      *string `json:"status"`
}

// UpdateByOwner patches the report when it exists and belongs to ownerID.
// A missing record and a foreign owner are indistinguishable to the caller.
func (s *LostItemService) UpdateByOwner(ctx context.Context, id, ownerID string, in UpdateLostItemInput) (*models.LostItem, error) {
	item, err := store.UpdateWhere(s.store, store.LostItems,
		func(i *models.LostItem) bool { return i.ID == id && i.UserID == ownerID },
		func(i *models.LostItem) {
			applyString(&i.Title, in.Title)
			applyString(&i.Description, in.Description)
			applyString(&i.Location, in.Location)
			applyString(&i.Date, in.Date)
			applyString(&i.Category, in.Category)
			applyString(&i.Image, in.Image)
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
func (s *LostItemService) DeleteByOwner(ctx context.Context, id, ownerID string) error {
	removed, err := store.DeleteWhere(s.store, store.LostItems,
		func(i *models.LostItem) bool { return i.ID == id && i.UserID == ownerID })
	if err != nil {
		return wrapStoreErr(err)
	}
	if !removed {
		return models.NewNotFoundOrUnauthorizedError("Item")
	}
	return nil
}
