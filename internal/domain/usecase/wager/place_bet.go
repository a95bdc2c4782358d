package wager

import (
	"context"

	"github.com/google/uuid"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
	errs "github.com/parlayhq/wager-engine/internal/domain/error"
	"github.com/parlayhq/wager-engine/internal/domain/port/events"
)

// PlaceBetRequest represents the input for placing a bet
type PlaceBetRequest struct {
	UserID  string
	MatchID string
	Choice  string
	Amount  string
}

// PlaceBet places a stake on a match outcome. The whole effect (bet
// row, balance debit, ledger entry) commits atomically; any failed
// check rolls everything back.
//
// Checks run in a fixed order: stake format and bounds, user balance,
// duplicate open bet, match status, betting window, odds availability.
// The first failure wins.
func (s *Service) PlaceBet(ctx context.Context, req PlaceBetRequest) (*entity.Bet, error) {
	// Format validation happens before any transaction opens
	if !entity.IsValidOutcome(req.Choice) {
		return nil, errs.ErrOutcomeUnavailable
	}
	choice := entity.Outcome(req.Choice)

	stakeCents, err := entity.ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if stakeCents < s.cfg.MinStakeCents || stakeCents > s.cfg.MaxStakeCents {
		return nil, errs.NewWagerError(req.UserID, req.MatchID, req.Choice, req.Amount,
			"stake outside bounds", errs.ErrInvalidStake)
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	bet, err := s.placeBetTx(txCtx, req.UserID, req.MatchID, choice, stakeCents)
	if err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back bet placement", map[string]any{
				"user_id":  req.UserID,
				"match_id": req.MatchID,
				"error":    rbErr.Error(),
			})
		}
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.logger.Error("Failed to commit bet placement", map[string]any{
			"user_id":  req.UserID,
			"match_id": req.MatchID,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.metrics.BetPlaced(bet.StakeCents)
	s.logger.Info("Bet placed", map[string]any{
		"bet_id":   bet.ID,
		"user_id":  bet.UserID,
		"match_id": bet.MatchID,
		"choice":   string(bet.Choice),
		"stake":    bet.Stake(),
		"payout":   bet.Payout(),
	})

	// Event publishing happens after commit; a broker failure never
	// rolls the ledger back
	if err := s.publisher.PublishBetPlaced(ctx, events.BetPlaced{
		BetID:       bet.ID,
		UserID:      bet.UserID,
		MatchID:     bet.MatchID,
		Choice:      string(bet.Choice),
		StakeCents:  bet.StakeCents,
		PayoutCents: bet.PayoutCents,
		TsUnixMs:    s.timeProvider.Now().UnixMilli(),
	}); err != nil {
		s.logger.Warn("Failed to publish bet placed event", map[string]any{
			"bet_id": bet.ID,
			"error":  err.Error(),
		})
	}

	return bet, nil
}

// placeBetTx runs the transactional part of placement. The match row is
// read under a shared lock so placement cannot interleave with a
// settlement holding the exclusive lock on the same match.
func (s *Service) placeBetTx(txCtx context.Context, userID, matchID string, choice entity.Outcome, stakeCents int64) (*entity.Bet, error) {
	matchRepo := s.uow.GetMatchRepository(txCtx)
	userRepo := s.uow.GetUserRepository(txCtx)
	betRepo := s.uow.GetBetRepository(txCtx)
	txnRepo := s.uow.GetTransactionRepository(txCtx)

	user, err := userRepo.GetByID(txCtx, userID)
	if err != nil {
		return nil, err
	}
	if !user.CanDebit(stakeCents) {
		return nil, errs.NewInsufficientBalanceError(userID, entity.FormatCents(stakeCents), user.Balance())
	}

	hasOpen, err := betRepo.HasOpenBet(txCtx, userID, matchID)
	if err != nil {
		return nil, err
	}
	if hasOpen {
		return nil, errs.ErrDuplicateOpenBet
	}

	// Shared lock before the user row lock below, matching the order
	// settlement takes its locks in
	match, err := matchRepo.GetShared(txCtx, matchID)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	if match.Status != entity.MatchPending && match.Status != entity.MatchLive {
		return nil, errs.ErrMarketClosed
	}
	if !match.CanAcceptBets(now, s.cfg.BettingCutoff) {
		return nil, errs.ErrBettingWindowClosed
	}

	odds, ok := match.Odds.For(choice)
	if !ok {
		return nil, errs.ErrOutcomeUnavailable
	}

	// The authoritative debit locks the user row; the CanDebit check
	// above only produces a friendlier error before the write path
	if _, err := userRepo.AdjustBalance(txCtx, userID, -stakeCents); err != nil {
		return nil, err
	}

	bet, err := entity.NewBet(uuid.NewString(), userID, matchID, choice, stakeCents, odds, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := betRepo.Create(txCtx, bet); err != nil {
		return nil, err
	}

	txn, err := entity.NewTransaction(uuid.NewString(), userID, -stakeCents,
		entity.TxnBetPlaced, entity.TxnStatusCompleted, bet.ID, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := txnRepo.Create(txCtx, txn); err != nil {
		return nil, err
	}

	return bet, nil
}
