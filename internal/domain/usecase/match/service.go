package match

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
	errs "github.com/parlayhq/wager-engine/internal/domain/error"
	"github.com/parlayhq/wager-engine/internal/domain/port/cache"
	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
	"github.com/parlayhq/wager-engine/internal/domain/port/persistence"
)

// Config holds match listing and retention settings
type Config struct {
	// Retention is how long after kickoff a match stays visible before
	// the sweep archives it
	Retention time.Duration
	// ActiveTTL bounds staleness of the cached active-match listing
	ActiveTTL time.Duration
}

// DefaultConfig mirrors the production retention window
func DefaultConfig() Config {
	return Config{
		Retention: 21 * 24 * time.Hour,
		ActiveTTL: 30 * time.Second,
	}
}

// Service manages the match catalogue: creation, odds updates, the
// PENDING -> LIVE transition, listings and the retention sweep.
// Settlement owns the transition to ENDED.
type Service struct {
	uow          persistence.UnitOfWork
	matchCache   cache.MatchCache
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config
}

// NewService creates a match service
func NewService(
	uow persistence.UnitOfWork,
	matchCache cache.MatchCache,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Service {
	return &Service{
		uow:          uow,
		matchCache:   matchCache,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
	}
}

// CreateMatchRequest represents the input for creating a match
type CreateMatchRequest struct {
	TeamA         string
	TeamB         string
	Sport         string
	StartTime     time.Time
	Odds          entity.MatchOdds
	OverUnderLine *decimal.Decimal
}

// CreateMatch registers a new PENDING match
func (s *Service) CreateMatch(ctx context.Context, req CreateMatchRequest) (*entity.Match, error) {
	match, err := entity.NewMatch(uuid.NewString(), req.TeamA, req.TeamB, req.Sport,
		req.StartTime, req.Odds, req.OverUnderLine, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.uow.GetMatchRepository(ctx).Create(ctx, match); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.logger.Info("Match created", map[string]any{
		"match_id": match.ID,
		"team_a":   match.TeamA,
		"team_b":   match.TeamB,
		"start":    match.StartTime,
	})
	return match, nil
}

// UpdateMatch replaces the mutable fields of a not-yet-ended match.
// Odds moves never touch existing bets; their payout is frozen.
func (s *Service) UpdateMatch(ctx context.Context, id string, req CreateMatchRequest) (*entity.Match, error) {
	repo := s.uow.GetMatchRepository(ctx)

	match, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if match.Status == entity.MatchEnded {
		return nil, errs.ErrMatchAlreadySettled
	}

	match.TeamA = req.TeamA
	match.TeamB = req.TeamB
	match.Sport = req.Sport
	match.StartTime = req.StartTime
	match.Odds = req.Odds
	match.OverUnderLine = req.OverUnderLine
	match.UpdatedAt = s.timeProvider.Now()

	if err := repo.Update(ctx, match); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return match, nil
}

// MarkLive transitions a match from PENDING to LIVE
func (s *Service) MarkLive(ctx context.Context, id string) (*entity.Match, error) {
	repo := s.uow.GetMatchRepository(ctx)

	match, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := match.MarkLive(s.timeProvider); err != nil {
		return nil, err
	}
	if err := repo.Update(ctx, match); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.logger.Info("Match marked live", map[string]any{"match_id": id})
	return match, nil
}

// GetMatch returns a single match
func (s *Service) GetMatch(ctx context.Context, id string) (*entity.Match, error) {
	return s.uow.GetMatchRepository(ctx).GetByID(ctx, id)
}

// ListActive returns the active-match listing through the read cache
func (s *Service) ListActive(ctx context.Context) ([]entity.Match, error) {
	if matches, hit, err := s.matchCache.GetActive(ctx); err == nil && hit {
		return matches, nil
	} else if err != nil {
		// A degraded cache never blocks reads
		s.logger.Warn("Match cache read failed", map[string]any{"error": err.Error()})
	}

	matches, err := s.uow.GetMatchRepository(ctx).ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.matchCache.SetActive(ctx, matches, s.cfg.ActiveTTL); err != nil {
		s.logger.Warn("Match cache write failed", map[string]any{"error": err.Error()})
	}
	return matches, nil
}

// ListCompleted returns ENDED matches whose kickoff fell in [from, to)
func (s *Service) ListCompleted(ctx context.Context, from, to time.Time) ([]entity.Match, error) {
	return s.uow.GetMatchRepository(ctx).ListCompleted(ctx, from, to)
}

// ListAll returns every non-archived match for the admin surface. The
// retention sweep runs first so anything past the window disappears
// from the listing in the same call.
func (s *Service) ListAll(ctx context.Context) ([]entity.Match, error) {
	if err := s.sweep(ctx); err != nil {
		return nil, err
	}
	return s.uow.GetMatchRepository(ctx).ListAll(ctx)
}

// ListArchived returns swept matches, most recently archived first
func (s *Service) ListArchived(ctx context.Context) ([]entity.Match, error) {
	return s.uow.GetMatchRepository(ctx).ListArchived(ctx)
}

// Archive soft-deletes one match immediately
func (s *Service) Archive(ctx context.Context, id string) error {
	now := s.timeProvider.Now()
	if err := s.uow.GetMatchRepository(ctx).SetArchived(ctx, id, &now); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// Restore clears the soft-delete flag so the match reappears in
// listings
func (s *Service) Restore(ctx context.Context, id string) error {
	if err := s.uow.GetMatchRepository(ctx).SetArchived(ctx, id, nil); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// sweep archives every match whose kickoff is older than the retention
// window
func (s *Service) sweep(ctx context.Context) error {
	now := s.timeProvider.Now()
	cutoff := now.Add(-s.cfg.Retention)

	archived, err := s.uow.GetMatchRepository(ctx).ArchiveStartedBefore(ctx, cutoff, now)
	if err != nil {
		return err
	}
	if archived > 0 {
		s.logger.Info("Retention sweep archived matches", map[string]any{
			"count":  archived,
			"cutoff": cutoff,
		})
		s.invalidateCache(ctx)
	}
	return nil
}

func (s *Service) invalidateCache(ctx context.Context) {
	if err := s.matchCache.Invalidate(ctx); err != nil {
		s.logger.Warn("Failed to invalidate match cache", map[string]any{"error": err.Error()})
	}
}
