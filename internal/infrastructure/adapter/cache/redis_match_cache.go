package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
	cacheport "github.com/parlayhq/wager-engine/internal/domain/port/cache"
	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
)

// activeMatchesKey holds the serialized active-match listing
const activeMatchesKey = "matches:active"

// RedisMatchCache caches the active-match listing in Redis
type RedisMatchCache struct {
	client *redis.Client
	logger coreport.Logger
}

// NewRedisMatchCache creates a Redis-backed match cache
func NewRedisMatchCache(client *redis.Client, logger coreport.Logger) cacheport.MatchCache {
	return &RedisMatchCache{
		client: client,
		logger: logger,
	}
}

// ConnectRedis establishes a Redis connection and verifies it with a ping
func ConnectRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}

// GetActive returns the cached active-match listing. A missing key is a
// cache miss, not an error.
func (c *RedisMatchCache) GetActive(ctx context.Context) ([]entity.Match, bool, error) {
	payload, err := c.client.Get(ctx, activeMatchesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var matches []entity.Match
	if err := json.Unmarshal(payload, &matches); err != nil {
		// A corrupt entry is treated as a miss so the caller refills it
		c.logger.Warn("Dropping corrupt active-match cache entry", map[string]any{
			"error": err.Error(),
		})
		return nil, false, nil
	}

	return matches, true, nil
}

// SetActive stores the active-match listing with the given TTL
func (c *RedisMatchCache) SetActive(ctx context.Context, matches []entity.Match, ttl time.Duration) error {
	payload, err := json.Marshal(matches)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, activeMatchesKey, payload, ttl).Err()
}

// Invalidate drops the cached listing
func (c *RedisMatchCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, activeMatchesKey).Err()
}
