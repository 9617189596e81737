package seed

import (
	"context"
	"testing"

	"amica/internal/models"
	"amica/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeederRun(t *testing.T) {
	st := store.New(store.NewMemoryBackend())
	s := NewSeeder(st)

	err := s.Run(context.Background(), Options{
		NumUsers:      5,
		NumItems:      3,
		NumActivities: 2,
		NumPosts:      4,
		ShouldClean:   true,
	})
	require.NoError(t, err)

	users, err := store.ReadAll[models.User](st, store.Users)
	require.NoError(t, err)
	require.Len(t, users, 5)

	// Every seeded account accepts the documented password.
	err = bcrypt.CompareHashAndPassword([]byte(users[0].Password), []byte(DefaultPassword))
	assert.NoError(t, err)

	lost, err := store.ReadAll[models.LostItem](st, store.LostItems)
	require.NoError(t, err)
	assert.Len(t, lost, 3)
	for _, item := range lost {
		assert.Equal(t, models.LostItemStatusLost, item.Status)
		assert.NotEmpty(t, item.UserID)
	}

	activities, err := store.ReadAll[models.Activity](st, store.Activities)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	for _, a := range activities {
		assert.NotEmpty(t, a.Participants)
	}

	posts, err := store.ReadAll[models.Post](st, store.Posts)
	require.NoError(t, err)
	assert.Len(t, posts, 4)
}

func TestSeederClean(t *testing.T) {
	st := store.New(store.NewMemoryBackend())
	s := NewSeeder(st)
	ctx := context.Background()

	require.NoError(t, s.Run(ctx, Options{NumUsers: 2, NumPosts: 2, ShouldClean: true}))
	require.NoError(t, s.Run(ctx, Options{NumUsers: 1, ShouldClean: true}))

	users, err := store.ReadAll[models.User](st, store.Users)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	posts, err := store.ReadAll[models.Post](st, store.Posts)
	require.NoError(t, err)
	assert.Empty(t, posts)
}
