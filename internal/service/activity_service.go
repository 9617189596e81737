package service

import (
	"context"

	"amica/internal/models"
	"amica/internal/store"
)

// ActivityService manages social activities and their participant lists.
type ActivityService struct {
	store *store.Store
}

// NewActivityService returns a new ActivityService backed by the given store.
func NewActivityService(st *store.Store) *ActivityService {
	return &ActivityService{store: st}
}

// CreateActivityInput carries the fields for a new activity.
type CreateActivityInput struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Date            string `json:"date"`
	Location        string `json:"location"`
	MaxParticipants int    `json:"maxParticipants"`
}

// Create validates the activity and persists it with the "active" status.
// The creator is enrolled as the first participant.
func (s *ActivityService) Create(ctx context.Context, ownerID string, in CreateActivityInput) (*models.Activity, error) {
	var violations []string
	if in.Title == "" {
		violations = append(violations, "title is required")
	}
	if in.Description == "" {
		violations = append(violations, "description is required")
	}
	if in.Date == "" {
		violations = append(violations, "date is required")
	}
	if in.Location == "" {
		violations = append(violations, "location is required")
	}
	if in.MaxParticipants < 0 {
		violations = append(violations, "maxParticipants cannot be negative")
	}
	if len(violations) > 0 {
		return nil, models.NewValidationErrors(violations)
	}

	activity, err := store.Append(s.store, store.Activities, models.Activity{
		UserID:          ownerID,
		Title:           in.Title,
		Description:     in.Description,
		Date:            in.Date,
		Location:        in.Location,
		MaxParticipants: in.MaxParticipants,
		Participants:    []string{ownerID},
		Status:          models.ActivityStatusActive,
	})
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return &activity, nil
}

// List returns every activity in storage order.
func (s *ActivityService) List(ctx context.Context) ([]models.Activity, error) {
	activities, err := store.ReadAll[models.Activity](s.store, store.Activities)
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return activities, nil
}

// GetByID returns the activity with the given id.
func (s *ActivityService) GetByID(ctx context.Context, id string) (*models.Activity, error) {
	activity, err := store.FindOne(s.store, store.Activities, func(a *models.Activity) bool { return a.ID == id })
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	if activity == nil {
		return nil, models.NewNotFoundError("Activity")
	}
	return activity, nil
}

// UpdateActivityInput carries the patchable activity fields. The participant
// list is managed only through Join and Leave.
type UpdateActivityInput struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	Date            *string `json:"date"`
	Location        *string `json:"location"`
	MaxParticipants *int    `json:"maxParticipants"`
	Status          *string `json:"status"`
}

// UpdateByOwner patches the activity when it exists and belongs to ownerID.
func (s *ActivityService) UpdateByOwner(ctx context.Context, id, ownerID string, in UpdateActivityInput) (*models.Activity, error) {
	activity, err := store.UpdateWhere(s.store, store.Activities,
		func(a *models.Activity) bool { return a.ID == id && a.UserID == ownerID },
		func(a *models.Activity) {
			applyString(&a.Title, in.Title)
			applyString(&a.Description, in.Description)
			applyString(&a.Date, in.Date)
			applyString(&a.Location, in.Location)
			if in.MaxParticipants != nil {
				a.MaxParticipants = *in.MaxParticipants
			}
			applyString(&a.Status, in.Status)
		})
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	if activity == nil {
		return nil, models.NewNotFoundOrUnauthorizedError("Activity")
	}
	return activity, nil
}

// DeleteByOwner removes the activity when it exists and belongs to ownerID.
func (s *ActivityService) DeleteByOwner(ctx context.Context, id, ownerID string) error {
	removed, err := store.DeleteWhere(s.store, store.Activities,
		func(a *models.Activity) bool { return a.ID == id && a.UserID == ownerID })
	if err != nil {
		return wrapStoreErr(err)
	}
	if !removed {
		return models.NewNotFoundOrUnauthorizedError("Activity")
	}
	return nil
}

// Join enrolls userID in the activity. Joining twice is a no-op; joining a
// full activity fails without mutating the stored record.
func (s *ActivityService) Join(ctx context.Context, activityID, userID string) (*models.Activity, error) {
	var joined *models.Activity
	err := store.Replace(s.store, store.Activities, func(activities []models.Activity) ([]models.Activity, bool, error) {
		for i := range activities {
			if activities[i].ID != activityID {
				continue
			}
			a := &activities[i]
			if a.HasParticipant(userID) {
				current := *a
				joined = &current
				return activities, false, nil
			}
			if a.IsFull() {
				return activities, false, models.NewActivityFullError()
			}
			a.Participants = append(a.Participants, userID)
			updated := *a
			joined = &updated
			return activities, true, nil
		}
		return activities, false, models.NewNotFoundError("Activity")
	})
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return joined, nil
}

// Leave removes userID from the activity's participant list. Leaving an
// activity the user never joined is a no-op.
func (s *ActivityService) Leave(ctx context.Context, activityID, userID string) (*models.Activity, error) {
	var left *models.Activity
	err := store.Replace(s.store, store.Activities, func(activities []models.Activity) ([]models.Activity, bool, error) {
		for i := range activities {
			if activities[i].ID != activityID {
				continue
			}
			a := &activities[i]
			for j, p := range a.Participants {
				if p == userID {
					a.Participants = append(a.Participants[:j], a.Participants[j+1:]...)
					updated := *a
					left = &updated
					return activities, true, nil
				}
			}
			current := *a
			left = &current
			return activities, false, nil
		}
		return activities, false, models.NewNotFoundError("Activity")
	})
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return left, nil
}
