package service

import (
	"context"

	"amica/internal/models"
	"amica/internal/store"
)

// PostService manages the community feed.
type PostService struct {
	store *store.Store
}

// NewPostService returns a new PostService backed by the given store.
func NewPostService(st *store.Store) *PostService {
	return &PostService{store: st}
}

// Create validates and persists a new post with a zero like counter.
func (s *PostService) Create(ctx context.Context, ownerID, content string) (*models.Post, error) {
	if content == "" {
		return nil, models.NewValidationErrors([]string{"content is required"})
	}

	post, err := store.Append(s.store, store.Posts, models.Post{
		UserID:  ownerID,
		Content: content,
	})
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return &post, nil
}

// List returns every post in storage order.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	posts, err := store.ReadAll[models.Post](s.store, store.Posts)
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return posts, nil
}

// GetByID returns the post with the given id.
func (s *PostService) GetByID(ctx context.Context, id string) (*models.Post, error) {
	post, err := store.FindOne(s.store, store.Posts, func(p *models.Post) bool { return p.ID == id })
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	if post == nil {
		return nil, models.NewNotFoundError("Post")
	}
	return post, nil
}

// UpdateByOwner replaces the post's content when it exists and belongs to
// ownerID. The like counter is not writable through updates.
func (s *PostService) UpdateByOwner(ctx context.Context, id, ownerID, content string) (*models.Post, error) {
	if content == "" {
		return nil, models.NewValidationErrors([]string{"content is required"})
	}

	post, err := store.UpdateWhere(s.store, store.Posts,
		func(p *models.Post) bool { return p.ID == id && p.UserID == ownerID },
		func(p *models.Post) { p.Content = content })
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	if post == nil {
		return nil, models.NewNotFoundOrUnauthorizedError("Post")
	}
	return post, nil
}

// DeleteByOwner removes the post when it exists and belongs to ownerID.
func (s *PostService) DeleteByOwner(ctx context.Context, id, ownerID string) error {
	removed, err := store.DeleteWhere(s.store, store.Posts,
		func(p *models.Post) bool { return p.ID == id && p.UserID == ownerID })
	if err != nil {
		return wrapStoreErr(err)
	}
	if !removed {
		return models.NewNotFoundOrUnauthorizedError("Post")
	}
	return nil
}
