package settlement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
	errs "github.com/parlayhq/wager-engine/internal/domain/error"
	"github.com/parlayhq/wager-engine/internal/domain/port/events"
)

// Summary reports what one settlement run did
type Summary struct {
	MatchID      string
	Result       string
	WonBets      int
	LostBets     int
	PaidOutCents int64
}

// SettleMatch records a final score and resolves every open bet on the
// match exactly once. The match row is locked exclusively for the whole
// run, so two concurrent settlements of the same match serialize and
// the second one fails on the ENDED check. Payouts use the amount
// frozen at placement time; odds changes after placement never matter.
func (s *Service) SettleMatch(ctx context.Context, matchID string, scoreHome, scoreAway int) (*Summary, error) {
	if scoreHome < 0 || scoreAway < 0 {
		return nil, errs.ErrInvalidScore
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	summary, err := s.settleTx(txCtx, matchID, scoreHome, scoreAway)
	if err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back settlement", map[string]any{
				"match_id": matchID,
				"error":    rbErr.Error(),
			})
		}
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.logger.Error("Failed to commit settlement", map[string]any{
			"match_id": matchID,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.metrics.MatchSettled(summary.WonBets, summary.LostBets)
	if summary.PaidOutCents > 0 {
		s.metrics.PayoutCredited(summary.PaidOutCents)
	}
	s.logger.Info("Match settled", map[string]any{
		"match_id":  summary.MatchID,
		"result":    summary.Result,
		"won_bets":  summary.WonBets,
		"lost_bets": summary.LostBets,
		"paid_out":  entity.FormatCents(summary.PaidOutCents),
	})

	// The match left the active listing; drop the cached copy
	if err := s.matchCache.Invalidate(ctx); err != nil {
		s.logger.Warn("Failed to invalidate match cache", map[string]any{
			"error": err.Error(),
		})
	}

	if err := s.publisher.PublishMatchSettled(ctx, events.MatchSettled{
		MatchID:      summary.MatchID,
		Result:       summary.Result,
		WonBets:      summary.WonBets,
		LostBets:     summary.LostBets,
		PaidOutCents: summary.PaidOutCents,
		TsUnixMs:     s.timeProvider.Now().UnixMilli(),
	}); err != nil {
		s.logger.Warn("Failed to publish match settled event", map[string]any{
			"match_id": summary.MatchID,
			"error":    err.Error(),
		})
	}

	return summary, nil
}

func (s *Service) settleTx(txCtx context.Context, matchID string, scoreHome, scoreAway int) (*Summary, error) {
	matchRepo := s.uow.GetMatchRepository(txCtx)
	betRepo := s.uow.GetBetRepository(txCtx)
	userRepo := s.uow.GetUserRepository(txCtx)
	txnRepo := s.uow.GetTransactionRepository(txCtx)

	match, err := matchRepo.GetForUpdate(txCtx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Status == entity.MatchEnded {
		return nil, errs.ErrMatchAlreadySettled
	}

	result := entity.NewMatchResult(scoreHome, scoreAway, match.Line())
	score := fmt.Sprintf("%d-%d", scoreHome, scoreAway)

	if err := match.RecordResult(score, scoreHome, scoreAway, s.timeProvider); err != nil {
		return nil, err
	}
	if err := matchRepo.Update(txCtx, match); err != nil {
		return nil, err
	}

	openBets, err := betRepo.ListOpenByMatch(txCtx, matchID)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	summary := &Summary{MatchID: matchID, Result: score}

	for i := range openBets {
		bet := &openBets[i]

		if !result.Wins(bet.Choice) {
			if err := betRepo.Resolve(txCtx, bet.ID, entity.BetLost, now); err != nil {
				return nil, err
			}
			summary.LostBets++
			continue
		}

		if err := betRepo.Resolve(txCtx, bet.ID, entity.BetWon, now); err != nil {
			return nil, err
		}
		if _, err := userRepo.AdjustBalance(txCtx, bet.UserID, bet.PayoutCents); err != nil {
			return nil, err
		}

		txn, err := entity.NewTransaction(uuid.NewString(), bet.UserID, bet.PayoutCents,
			entity.TxnBetWin, entity.TxnStatusCompleted, bet.ID, s.timeProvider)
		if err != nil {
			return nil, err
		}
		if err := txnRepo.Create(txCtx, txn); err != nil {
			return nil, err
		}

		summary.WonBets++
		summary.PaidOutCents += bet.PayoutCents
	}

	return summary, nil
}
