package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/KirkDiggler/pokedex-api/internal/pkg/clock"
	"github.com/KirkDiggler/pokedex-api/internal/redis"
	"github.com/KirkDiggler/pokedex-api/internal/repositories/navigation"
)

func main() {
	redisURL := os.Getenv("POKEDEX_REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	client, err := redis.NewClient(redisURL, nil)
	if err != nil {
		log.Fatal("Failed to create Redis client:", err)
	}
	defer func() { _ = client.Close() }() // nolint:errcheck // process exits

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for stale navigation sessions...")

	found, err := navigation.Prune(ctx, navigation.PruneInput{Client: client, Clock: clock.New(), DryRun: true})
	if err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d sessions, found %d stale entries\n", found.Checked, len(found.Stale))
	if len(found.Stale) == 0 {
		return
	}

	fmt.Println("\nStale keys:")
	for _, key := range found.Stale {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE these entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response) // nolint:errcheck // empty answer aborts

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	removed, err := client.Del(ctx, found.Stale...).Result()
	if err != nil {
		log.Fatal("Failed to delete stale sessions:", err)
	}
	fmt.Printf("Deleted %d sessions\n", removed)
}
