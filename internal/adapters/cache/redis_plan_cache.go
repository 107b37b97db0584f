package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"trip-route-service/internal/domain"
)

// Redis-backed cache for computed trip plans.
// Plans are pure functions of the waypoint set and planning parameters, both
// of which are part of the key, so entries only expire to bound memory, not
// because they can go stale.
type RedisPlanCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPlanCache(client *redis.Client, ttl time.Duration) *RedisPlanCache {
	return &RedisPlanCache{client: client, ttl: ttl}
}

// Return the cached plan for key, or (nil, nil) on a miss.
func (c *RedisPlanCache) GetPlan(ctx context.Context, key string) (*domain.TripPlan, error) {
	if c.client == nil {
		return nil, errors.New("plan cache: client is nil")
	}
	if key == "" {
		return nil, errors.New("plan cache: key must not be empty")
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("plan cache: get %q: %w", key, err)
	}

	var plan domain.TripPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, fmt.Errorf("plan cache: decode %q: %w", key, err)
	}

	return &plan, nil
}

// Store a computed plan under key with the configured TTL.
func (c *RedisPlanCache) PutPlan(ctx context.Context, key string, plan *domain.TripPlan) error {
	if c.client == nil {
		return errors.New("plan cache: client is nil")
	}
	if key == "" {
		return errors.New("plan cache: key must not be empty")
	}
	if plan == nil {
		return errors.New("plan cache: plan must not be nil")
	}

	raw, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("plan cache: encode %q: %w", key, err)
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("plan cache: set %q: %w", key, err)
	}

	return nil
}
