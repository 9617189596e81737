// Package seed creates demo data for development and testing. Every seeded
// account shares one known password so seeded logins work out of the box.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"amica/internal/models"
	"amica/internal/service"
	"amica/internal/store"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the plaintext password every seeded account accepts.
const DefaultPassword = "password123"

// Options configuration for the seeder
type Options struct {
	NumUsers      int
	NumItems      int // per item category
	NumActivities int
	NumPosts      int
	ShouldClean   bool
}

var campusLocations = []string{
	"Main library", "Student union", "Lecture hall B", "Cafeteria",
	"East pitch", "Science building", "Dorm block 3", "Gym lobby",
	"Bus stop north", "Computer lab 2",
}

var itemCategories = []string{
	"electronics", "books", "clothing", "keys", "bags", "sports", "other",
}

// Seeder populates the record store with generated data.
type Seeder struct {
	store     *store.Store
	users     *service.UserService
	lost      *service.LostItemService
	found     *service.FoundItemService
	borrow    *service.BorrowRequestService
	lend      *service.LendItemService
	activity  *service.ActivityService
	posts     *service.PostService
	rng       *rand.Rand
	seededIDs []string
}

// NewSeeder creates a Seeder bound to the given store.
func NewSeeder(st *store.Store) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		store:    st,
		users:    service.NewUserService(st),
		lost:     service.NewLostItemService(st),
		found:    service.NewFoundItemService(st),
		borrow:   service.NewBorrowRequestService(st),
		lend:     service.NewLendItemService(st),
		activity: service.NewActivityService(st),
		posts:    service.NewPostService(st),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll empties every collection.
func (s *Seeder) ClearAll() error {
	for _, name := range store.AllCollections() {
		if err := s.store.EnsureCollection(name); err != nil {
			return fmt.Errorf("ensure %s: %w", name, err)
		}
	}
	if err := store.WriteAll(s.store, store.Users, []models.User{}); err != nil {
		return err
	}
	if err := store.WriteAll(s.store, store.LostItems, []models.LostItem{}); err != nil {
		return err
	}
	if err := store.WriteAll(s.store, store.FoundItems, []models.FoundItem{}); err != nil {
		return err
	}
	if err := store.WriteAll(s.store, store.BorrowRequests, []models.BorrowRequest{}); err != nil {
		return err
	}
	if err := store.WriteAll(s.store, store.LendItems, []models.LendItem{}); err != nil {
		return err
	}
	if err := store.WriteAll(s.store, store.Activities, []models.Activity{}); err != nil {
		return err
	}
	return store.WriteAll(s.store, store.Posts, []models.Post{})
}

// Run seeds the store according to opts.
func (s *Seeder) Run(ctx context.Context, opts Options) error {
	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}
	}

	if err := s.createUsers(ctx, opts.NumUsers); err != nil {
		return err
	}
	if err := s.createItems(ctx, opts.NumItems); err != nil {
		return err
	}
	if err := s.createActivities(ctx, opts.NumActivities); err != nil {
		return err
	}
	if err := s.createPosts(ctx, opts.NumPosts); err != nil {
		return err
	}

	log.Printf("Seeded %d users, %d items per category, %d activities, %d posts",
		opts.NumUsers, opts.NumItems, opts.NumActivities, opts.NumPosts)
	return nil
}

func (s *Seeder) createUsers(ctx context.Context, n int) error {
	// One bcrypt round for all accounts; hashing per user dominates seed time
	// otherwise.
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		name := gofakeit.Name()
		email := fmt.Sprintf("%s%d@campus.edu", gofakeit.Username(), i)
		user, err := s.users.Create(ctx, email, string(hash), name)
		if err != nil {
			return fmt.Errorf("seed user %d: %w", i, err)
		}
		s.seededIDs = append(s.seededIDs, user.ID)
	}
	return nil
}

func (s *Seeder) randomUserID() string {
	if len(s.seededIDs) == 0 {
		return ""
	}
	return s.seededIDs[s.rng.Intn(len(s.seededIDs))]
}

func (s *Seeder) randomDate() string {
	daysBack := s.rng.Intn(60)
	return time.Now().AddDate(0, 0, -daysBack).Format("2006-01-02")
}

func (s *Seeder) randomLocation() string {
	return campusLocations[s.rng.Intn(len(campusLocations))]
}

func (s *Seeder) createItems(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if _, err := s.lost.Create(ctx, s.randomUserID(), service.CreateLostItemInput{
			Title:       gofakeit.ProductName(),
			Description: gofakeit.Sentence(10),
			Location:    s.randomLocation(),
			Date:        s.randomDate(),
			Category:    itemCategories[s.rng.Intn(len(itemCategories))],
		}); err != nil {
			return fmt.Errorf("seed lost item %d: %w", i, err)
		}

		if _, err := s.found.Create(ctx, s.randomUserID(), service.CreateFoundItemInput{
			ItemName:    gofakeit.ProductName(),
			Description: gofakeit.Sentence(10),
			Location:    s.randomLocation(),
			Date:        s.randomDate(),
			ContactInfo: gofakeit.Email(),
		}); err != nil {
			return fmt.Errorf("seed found item %d: %w", i, err)
		}

		if _, err := s.borrow.Create(ctx, s.randomUserID(), service.CreateBorrowRequestInput{
			ItemName:    gofakeit.ProductName(),
			Description: gofakeit.Sentence(8),
			Duration:    fmt.Sprintf("%d days", 1+s.rng.Intn(14)),
			Purpose:     gofakeit.Sentence(6),
		}); err != nil {
			return fmt.Errorf("seed borrow request %d: %w", i, err)
		}

		if _, err := s.lend.Create(ctx, s.randomUserID(), service.CreateLendItemInput{
			ItemName:     gofakeit.ProductName(),
			Description:  gofakeit.Sentence(8),
			Condition:    []string{"new", "good", "worn"}[s.rng.Intn(3)],
			Availability: fmt.Sprintf("until %s", s.randomDate()),
		}); err != nil {
			return fmt.Errorf("seed lend item %d: %w", i, err)
		}
	}
	return nil
}

func (s *Seeder) createActivities(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		ownerID := s.randomUserID()
		activity, err := s.activity.Create(ctx, ownerID, service.CreateActivityInput{
			Title:           gofakeit.HipsterSentence(4),
			Description:     gofakeit.Sentence(12),
			Date:            s.randomDate(),
			Location:        s.randomLocation(),
			MaxParticipants: []int{0, 5, 10, 20}[s.rng.Intn(4)],
		})
		if err != nil {
			return fmt.Errorf("seed activity %d: %w", i, err)
		}

		// Enroll a few extra participants
		for j := 0; j < s.rng.Intn(4); j++ {
			if _, err := s.activity.Join(ctx, activity.ID, s.randomUserID()); err != nil {
				var appErr *models.AppError
				if errors.As(err, &appErr) && appErr.Code == models.CodeActivityFull {
					break
				}
				return fmt.Errorf("seed activity %d join: %w", i, err)
			}
		}
	}
	return nil
}

func (s *Seeder) createPosts(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if _, err := s.posts.Create(ctx, s.randomUserID(), gofakeit.Paragraph(1, 2, 8, " ")); err != nil {
			return fmt.Errorf("seed post %d: %w", i, err)
		}
	}
	return nil
}
