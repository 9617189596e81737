package service

import (
	"context"
	"time"

	"amica/internal/models"
	"amica/internal/store"

	"github.com/google/uuid"
)

// UserService manages account records. Password hashing and token issuance
// live in the auth handlers; this service only persists what it is given.
type UserService struct {
	store *store.Store
}

// NewUserService returns a new UserService backed by the given store.
func NewUserService(st *store.Store) *UserService {
	return &UserService{store: st}
}

// Create persists a new account. Email uniqueness is enforced here, inside
// the collection's write lock, so two simultaneous registrations cannot both
// claim the same address.
func (s *UserService) Create(ctx context.Context, email, hashedPassword, name string) (*models.User, error) {
	user := models.User{
		Record: models.Record{
			ID:        uuid.NewString(),
			CreatedAt: time.Now().UTC(),
		},
		Email:    email,
		Password: hashedPassword,
		Name:     name,
	}

	err := store.Replace(s.store, store.Users, func(users []models.User) ([]models.User, bool, error) {
		for i := range users {
			if users[i].Email == email {
				return users, false, models.NewConflictError("User already exists with this email")
			}
		}
		return append(users, user), true, nil
	})
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return &user, nil
}

// GetByEmail returns the account registered under email, or nil when unknown.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := store.FindOne(s.store, store.Users, func(u *models.User) bool { return u.Email == email })
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return user, nil
}

// GetByID returns the account with the given id.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := store.FindOne(s.store, store.Users, func(u *models.User) bool { return u.ID == id })
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	if user == nil {
		return nil, models.NewNotFoundError("User")
	}
	return user, nil
}

// UpdateProfileInput carries the patchable profile fields. Nil means
// "leave unchanged".
type UpdateProfileInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Bio   *string `json:"bio"`
}

// UpdateProfile patches the account's profile fields.
func (s *UserService) UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (*models.User, error) {
	user, err := store.UpdateWhere(s.store, store.Users,
		func(u *models.User) bool { return u.ID == id },
		func(u *models.User) {
			applyString(&u.Name, in.Name)
			applyString(&u.Email, in.Email)
			applyString(&u.Bio, in.Bio)
		})
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	if user == nil {
		return nil, models.NewNotFoundError("User")
	}
	return user, nil
}
