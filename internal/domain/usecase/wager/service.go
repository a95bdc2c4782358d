package wager

import (
	"context"
	"time"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
	errs "github.com/parlayhq/wager-engine/internal/domain/error"
	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
	"github.com/parlayhq/wager-engine/internal/domain/port/events"
	"github.com/parlayhq/wager-engine/internal/domain/port/persistence"
)

// Config holds the wagering limits and windows
type Config struct {
	// MinStakeCents and MaxStakeCents bound a single stake, inclusive
	MinStakeCents int64
	MaxStakeCents int64
	// BettingCutoff is how long before kickoff the market closes
	BettingCutoff time.Duration
	// CancelCutoff is how long before kickoff refunds stop
	CancelCutoff time.Duration
}

// DefaultConfig mirrors the production limits
func DefaultConfig() Config {
	return Config{
		MinStakeCents: 100000,  // 1000.00
		MaxStakeCents: 1000000, // 10000.00
		BettingCutoff: 30 * time.Minute,
		CancelCutoff:  3 * time.Hour,
	}
}

// Service handles bet placement and cancellation. Every mutation runs
// inside a unit of work so the bet row, the balance change and the
// ledger entry commit or roll back together.
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
	publisher    events.Publisher
	cfg          Config
}

// NewService creates a wager service
func NewService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
	publisher events.Publisher,
	cfg Config,
) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
		publisher:    publisher,
		cfg:          cfg,
	}
}

// ListUserBets returns all bets of a user, newest first
func (s *Service) ListUserBets(ctx context.Context, userID string) ([]entity.Bet, error) {
	return s.uow.GetBetRepository(ctx).ListByUser(ctx, userID)
}

// ListUserOpenBets returns the user's OPEN bets, newest first
func (s *Service) ListUserOpenBets(ctx context.Context, userID string) ([]entity.Bet, error) {
	return s.uow.GetBetRepository(ctx).ListOpenByUser(ctx, userID)
}

// ListRecentBets returns the newest bets across all users. A
// non-positive limit falls back to 50.
func (s *Service) ListRecentBets(ctx context.Context, limit int) ([]entity.Bet, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.uow.GetBetRepository(ctx).ListRecent(ctx, limit)
}

// ListMatchBets returns all bets on a match, newest first
func (s *Service) ListMatchBets(ctx context.Context, matchID string) ([]entity.Bet, error) {
	return s.uow.GetBetRepository(ctx).ListByMatch(ctx, matchID)
}

// GetBet returns a single bet if the caller owns it
func (s *Service) GetBet(ctx context.Context, userID, betID string) (*entity.Bet, error) {
	bet, err := s.uow.GetBetRepository(ctx).GetByID(ctx, betID)
	if err != nil {
		return nil, err
	}
	if bet.UserID != userID {
		return nil, errs.ErrNotBetOwner
	}
	return bet, nil
}
