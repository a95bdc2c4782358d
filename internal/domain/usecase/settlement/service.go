package settlement

import (
	"strconv"
	"strings"

	errs "github.com/parlayhq/wager-engine/internal/domain/error"
	"github.com/parlayhq/wager-engine/internal/domain/port/cache"
	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
	"github.com/parlayhq/wager-engine/internal/domain/port/events"
	"github.com/parlayhq/wager-engine/internal/domain/port/persistence"
)

// Service settles ended matches: records the final score, resolves
// every open bet on the match and credits winning payouts, all in one
// database transaction per match.
type Service struct {
	uow          persistence.UnitOfWork
	matchCache   cache.MatchCache
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
	publisher    events.Publisher
}

// NewService creates a settlement service
func NewService(
	uow persistence.UnitOfWork,
	matchCache cache.MatchCache,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
	publisher events.Publisher,
) *Service {
	return &Service{
		uow:          uow,
		matchCache:   matchCache,
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
		publisher:    publisher,
	}
}

// ParseScore parses a final score in "H-A" form into its two halves.
// Scores are small non-negative integers; anything else is rejected.
func ParseScore(score string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(score), "-")
	if len(parts) != 2 {
		return 0, 0, errs.ErrInvalidScore
	}

	home, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || home < 0 {
		return 0, 0, errs.ErrInvalidScore
	}
	away, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || away < 0 {
		return 0, 0, errs.ErrInvalidScore
	}

	return home, away, nil
}
