// Script to load demo data into the configured database.
// Usage: go run ./scripts/seed
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/blaisecz/soulsync/internal/config"
	"github.com/blaisecz/soulsync/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(context.Background(), db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("Seed completed!")
	fmt.Println("\nSample user IDs for testing:")
	for _, u := range seed.Users {
		fmt.Printf("  %s  %-18s %-8s %s\n", u.User.ID, u.User.Email, u.User.Membership, u.User.Timezone)
	}
}
