// Command seed fills the configured store with fake achievement posts.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"mentorly/internal/config"
	"mentorly/internal/repository"
	"mentorly/internal/seed"
)

func main() {
	count := flag.Int("posts", 25, "number of posts to create")
	seedValue := flag.Int64("seed", 0, "random seed (0 picks one)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	repo, closeFn, err := repository.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer func() { _ = closeFn(context.Background()) }()

	created, err := seed.Posts(ctx, repo, *count, *seedValue)
	if err != nil {
		log.Fatalf("Seeding failed after %d posts: %v", created, err)
	}
	log.Printf("Seeded %d achievement posts", created)
}
