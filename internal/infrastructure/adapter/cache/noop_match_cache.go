package cache

import (
	"context"
	"time"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
	cacheport "github.com/parlayhq/wager-engine/internal/domain/port/cache"
)

// NoopMatchCache is a MatchCache that never hits.
// Used when Redis is disabled; every read falls through to the database.
type NoopMatchCache struct{}

// NewNoopMatchCache creates a no-op match cache
func NewNoopMatchCache() cacheport.MatchCache {
	return &NoopMatchCache{}
}

// GetActive always reports a miss
func (c *NoopMatchCache) GetActive(ctx context.Context) ([]entity.Match, bool, error) {
	return nil, false, nil
}

// SetActive does nothing
func (c *NoopMatchCache) SetActive(ctx context.Context, matches []entity.Match, ttl time.Duration) error {
	return nil
}

// Invalidate does nothing
func (c *NoopMatchCache) Invalidate(ctx context.Context) error {
	return nil
}
