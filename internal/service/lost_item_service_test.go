package service

import (
	"context"
	"testing"

	"amica/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLostItemService_CreateDefaults(t *testing.T) {
	svc := NewLostItemService(newTestStore(t))

	item, err := svc.Create(context.Background(), "owner", CreateLostItemInput{
		Title:       "Black umbrella",
		Description: "Left at the library entrance",
		Location:    "Main library",
		Date:        "2026-08-20",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "owner", item.UserID)
	assert.Equal(t, models.LostItemStatusLost, item.Status)
	assert.False(t, item.CreatedAt.IsZero())
	assert.True(t, item.UpdatedAt.IsZero())
}

func TestLostItemService_CreateAggregatesViolations(t *testing.T) {
	svc := NewLostItemService(newTestStore(t))

	_, err := svc.Create(context.Background(), "owner", CreateLostItemInput{Title: "Umbrella"})
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeValidation, appErr.Code)
	assert.Equal(t, []string{
		"description is required",
		"location is required",
		"date is required",
	}, appErr.Messages)
}

func TestLostItemService_UpdateByOwner(t *testing.T) {
	svc := NewLostItemService(newTestStore(t))
	ctx := context.Background()

	item, err := svc.Create(ctx, "owner", CreateLostItemInput{
		Title:       "Black umbrella",
		Description: "Left at the library entrance",
		Location:    "Main library",
		Date:        "2026-08-20",
	})
	require.NoError(t, err)

	status := models.LostItemStatusFound
	updated, err := svc.UpdateByOwner(ctx, item.ID, "owner", UpdateLostItemInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.LostItemStatusFound, updated.Status)
	assert.Equal(t, "Black umbrella", updated.Title)
	assert.False(t, updated.UpdatedAt.IsZero())
}

func TestLostItemService_OwnershipIndistinguishableFromMissing(t *testing.T) {
	svc := NewLostItemService(newTestStore(t))
	ctx := context.Background()

	item, err := svc.Create(ctx, "owner", CreateLostItemInput{
		Title:       "Black umbrella",
		Description: "Left at the library entrance",
		Location:    "Main library",
		Date:        "2026-08-20",
	})
	require.NoError(t, err)

	title := "hijacked"
	_, err = svc.UpdateByOwner(ctx, item.ID, "intruder", UpdateLostItemInput{Title: &title})
	foreignErr, ok := err.(*models.AppError)
	require.True(t, ok)

	_, err = svc.UpdateByOwner(ctx, "no-such-id", "owner", UpdateLostItemInput{Title: &title})
	missingErr, ok := err.(*models.AppError)
	require.True(t, ok)

	assert.Equal(t, models.CodeNotFound, foreignErr.Code)
	assert.Equal(t, foreignErr.Message, missingErr.Message)

	// The rejected update left the record alone.
	stored, err := svc.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Black umbrella", stored.Title)

	err = svc.DeleteByOwner(ctx, item.ID, "intruder")
	require.Error(t, err)
	_, err = svc.GetByID(ctx, item.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByOwner(ctx, item.ID, "owner"))
}

func TestUserService_CreateRejectsDuplicateEmail(t *testing.T) {
	svc := NewUserService(newTestStore(t))
	ctx := context.Background()

	user, err := svc.Create(ctx, "pat@campus.edu", "hashed", "Pat")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	_, err = svc.Create(ctx, "pat@campus.edu", "other-hash", "Other Pat")
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeConflict, appErr.Code)
}

func TestUserService_GetByEmail(t *testing.T) {
	svc := NewUserService(newTestStore(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, "pat@campus.edu", "hashed", "Pat")
	require.NoError(t, err)

	user, err := svc.GetByEmail(ctx, "pat@campus.edu")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Pat", user.Name)

	unknown, err := svc.GetByEmail(ctx, "nobody@campus.edu")
	require.NoError(t, err)
	assert.Nil(t, unknown)
}

func TestUserService_UpdateProfile(t *testing.T) {
	svc := NewUserService(newTestStore(t))
	ctx := context.Background()

	user, err := svc.Create(ctx, "pat@campus.edu", "hashed", "Pat")
	require.NoError(t, err)

	bio := "Third-year physics student"
	updated, err := svc.UpdateProfile(ctx, user.ID, UpdateProfileInput{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, bio, updated.Bio)
	assert.Equal(t, "Pat", updated.Name)
	// The stored hash survives a profile update untouched.
	assert.Equal(t, "hashed", updated.Password)
}

func TestPostService_CreateAndUpdate(t *testing.T) {
	svc := NewPostService(newTestStore(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, "author", "")
	require.Error(t, err)

	post, err := svc.Create(ctx, "author", "First day on campus!")
	require.NoError(t, err)
	assert.Equal(t, 0, post.Likes)

	updated, err := svc.UpdateByOwner(ctx, post.ID, "author", "First week on campus!")
	require.NoError(t, err)
	assert.Equal(t, "First week on campus!", updated.Content)

	_, err = svc.UpdateByOwner(ctx, post.ID, "intruder", "defaced")
	require.Error(t, err)

	require.NoError(t, svc.DeleteByOwner(ctx, post.ID, "author"))
}
