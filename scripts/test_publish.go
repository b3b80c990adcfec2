//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type ListingChangeEvent struct {
	ListingID int64  `json:"listing_id"`
	Action    string `json:"action"`
	ChangedAt int64  `json:"changed_at_ms"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	listingID := flag.Int64("listing", 42, "Listing id to publish")
	action := flag.String("action", "updated", "Event action (created|updated|deleted)")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := ListingChangeEvent{
		ListingID: *listingID,
		Action:    *action,
		ChangedAt: time.Now().UnixMilli(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "listing-events",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("  Stream: listing-events\n")
	fmt.Printf("  Message ID: %s\n", result)
	fmt.Printf("  Listing ID: %d\n", event.ListingID)
	fmt.Printf("  Action: %s\n", event.Action)
}
