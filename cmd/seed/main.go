// Command main populates the record store with demo data.
package main

import (
	"context"
	"flag"
	"log"

	"amica/internal/config"
	"amica/internal/seed"
	"amica/internal/store"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	numItems := flag.Int("items", 10, "Number of items per category to create")
	numActivities := flag.Int("activities", 8, "Number of activities to create")
	numPosts := flag.Int("posts", 30, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean data files before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Seeding into %s (users=%d items=%d activities=%d posts=%d clean=%v)",
		cfg.DataDir, *numUsers, *numItems, *numActivities, *numPosts, *shouldClean)

	st := store.NewFileStore(cfg.DataDir)
	s := seed.NewSeeder(st)

	if err := s.Run(context.Background(), seed.Options{
		NumUsers:      *numUsers,
		NumItems:      *numItems,
		NumActivities: *numActivities,
		NumPosts:      *numPosts,
		ShouldClean:   *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Done. All seeded accounts use the password %q", seed.DefaultPassword)
}
