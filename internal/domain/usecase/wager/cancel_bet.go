package wager

import (
	"context"

	"github.com/google/uuid"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
	errs "github.com/parlayhq/wager-engine/internal/domain/error"
	"github.com/parlayhq/wager-engine/internal/domain/port/events"
)

// CancelBet voids an open bet and refunds its stake. Only the owner
// can cancel, only while the bet is OPEN, and only up to the
// cancellation cutoff before kickoff.
//
// Check order: bet exists, caller owns it, bet still open, window
// still open. Existence and ownership are distinct failures so a
// caller can never probe another user's bets.
func (s *Service) CancelBet(ctx context.Context, userID, betID string) (*entity.Bet, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	bet, err := s.cancelBetTx(txCtx, userID, betID)
	if err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back bet cancellation", map[string]any{
				"bet_id": betID,
				"error":  rbErr.Error(),
			})
		}
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.logger.Error("Failed to commit bet cancellation", map[string]any{
			"bet_id": betID,
			"error":  err.Error(),
		})
		return nil, err
	}

	s.metrics.BetCancelled(bet.StakeCents)
	s.logger.Info("Bet cancelled", map[string]any{
		"bet_id":   bet.ID,
		"user_id":  bet.UserID,
		"match_id": bet.MatchID,
		"refund":   bet.Stake(),
	})

	if err := s.publisher.PublishBetCancelled(ctx, events.BetCancelled{
		BetID:      bet.ID,
		UserID:     bet.UserID,
		MatchID:    bet.MatchID,
		StakeCents: bet.StakeCents,
		TsUnixMs:   s.timeProvider.Now().UnixMilli(),
	}); err != nil {
		s.logger.Warn("Failed to publish bet cancelled event", map[string]any{
			"bet_id": bet.ID,
			"error":  err.Error(),
		})
	}

	return bet, nil
}

func (s *Service) cancelBetTx(txCtx context.Context, userID, betID string) (*entity.Bet, error) {
	betRepo := s.uow.GetBetRepository(txCtx)
	matchRepo := s.uow.GetMatchRepository(txCtx)
	userRepo := s.uow.GetUserRepository(txCtx)
	txnRepo := s.uow.GetTransactionRepository(txCtx)

	bet, err := betRepo.GetByID(txCtx, betID)
	if err != nil {
		return nil, err
	}
	if bet.UserID != userID {
		return nil, errs.ErrNotBetOwner
	}
	if !bet.IsOpen() {
		return nil, errs.ErrBetAlreadyResolved
	}

	// Shared lock keeps a concurrent settlement of the same match from
	// resolving this bet between the checks and the refund
	match, err := matchRepo.GetShared(txCtx, bet.MatchID)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	if !match.CanCancelBets(now, s.cfg.CancelCutoff) {
		return nil, errs.ErrCancellationWindowClosed
	}

	// Guarded update: fails if the bet left OPEN since the read above
	if err := betRepo.Resolve(txCtx, bet.ID, entity.BetCancelled, now); err != nil {
		return nil, err
	}
	bet.Status = entity.BetCancelled
	bet.SettledAt = &now

	if _, err := userRepo.AdjustBalance(txCtx, userID, bet.StakeCents); err != nil {
		return nil, err
	}

	txn, err := entity.NewTransaction(uuid.NewString(), userID, bet.StakeCents,
		entity.TxnBetRefund, entity.TxnStatusCompleted, bet.ID, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := txnRepo.Create(txCtx, txn); err != nil {
		return nil, err
	}

	return bet, nil
}
