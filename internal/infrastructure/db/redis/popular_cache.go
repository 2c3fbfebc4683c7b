package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pressroom/publishing-api/internal/core/ports"
)

const (
	popularKey = "articles:popular"
	popularTTL = 30 * time.Second
)

// PopularCache is a read-through cache for the public popular-articles
// listing. Entries expire after a short TTL; staleness within that window is
// acceptable for a landing-page feed.
type PopularCache struct {
	client *redis.Client
}

// NewPopularCache creates a PopularCache wrapping the given Redis client.
func NewPopularCache(client *redis.Client) *PopularCache {
	return &PopularCache{client: client}
}

// Get returns the cached listing, or (nil, nil) on a miss.
func (c *PopularCache) Get(ctx context.Context) ([]ports.ArticleSummary, error) {
	raw, err := c.client.Get(ctx, popularKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("popular cache get: %w", err)
	}

	var items []ports.ArticleSummary
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("popular cache decode: %w", err)
	}
	return items, nil
}

// Set stores the listing with the cache TTL.
func (c *PopularCache) Set(ctx context.Context, items []ports.ArticleSummary) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("popular cache encode: %w", err)
	}
	return c.client.Set(ctx, popularKey, raw, popularTTL).Err()
}
