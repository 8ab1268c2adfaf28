// Package cache implements the summary cache on Redis.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/kakeibo/backend/internal/application/adapter"
)

// summaryCache implements adapter.SummaryCache on a Redis client.
type summaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache creates a Redis-backed summary cache.
func NewSummaryCache(client *redis.Client, ttl time.Duration) adapter.SummaryCache {
	return &summaryCache{
		client: client,
		ttl:    ttl,
	}
}

func summaryKey(userID uuid.UUID) string {
	return "summary:" + userID.String()
}

// Get returns the cached payload for a user, with ok=false on a miss.
func (c *summaryCache) Get(ctx context.Context, userID uuid.UUID) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, summaryKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return payload, true, nil
}

// Set stores the payload for a user with the configured TTL.
func (c *summaryCache) Set(ctx context.Context, userID uuid.UUID, payload []byte) error {
	return c.client.Set(ctx, summaryKey(userID), payload, c.ttl).Err()
}

// Invalidate drops the cached payload for a user.
func (c *summaryCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return c.client.Del(ctx, summaryKey(userID)).Err()
}
