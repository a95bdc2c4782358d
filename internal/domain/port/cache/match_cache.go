package cache

import (
	"context"
	"time"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
)

// MatchCache is a read-through cache for the active-match listing, the
// hottest read path. Implementations must treat a miss as (nil, false,
// nil); callers always fall back to the repository.
type MatchCache interface {
	GetActive(ctx context.Context) ([]entity.Match, bool, error)
	SetActive(ctx context.Context, matches []entity.Match, ttl time.Duration) error
	// Invalidate drops the cached listing. Called on every match mutation.
	Invalidate(ctx context.Context) error
}
