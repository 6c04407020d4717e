package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"homelet/internal/domain"

	"github.com/redis/go-redis/v9"
)

const popularSearchKey = "popular_searches"

// PopularSearchCache keeps the popular-searches aggregation in Redis for a
// short TTL. A nil client disables caching entirely.
type PopularSearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewPopularSearchCache(client *redis.Client, ttl time.Duration) *PopularSearchCache {
	return &PopularSearchCache{client: client, ttl: ttl}
}

// Get returns the cached aggregation, or (nil, nil) on a miss.
func (c *PopularSearchCache) Get(ctx context.Context) ([]domain.PopularQuery, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	val, err := c.client.Get(ctx, popularSearchKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get popular searches from redis: %w", err)
	}

	var out []domain.PopularQuery
	if err := json.Unmarshal([]byte(val), &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached popular searches: %w", err)
	}
	return out, nil
}

func (c *PopularSearchCache) Set(ctx context.Context, items []domain.PopularQuery) error {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal popular searches: %w", err)
	}

	if err := c.client.Set(ctx, popularSearchKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache popular searches: %w", err)
	}
	return nil
}
