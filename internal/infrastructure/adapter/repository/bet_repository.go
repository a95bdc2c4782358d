package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
	errs "github.com/parlayhq/wager-engine/internal/domain/error"
	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
	"github.com/parlayhq/wager-engine/internal/infrastructure/adapter/model"
)

// BetRepository implements BetRepository interface using GORM
type BetRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewBetRepository creates a new BetRepository instance
func NewBetRepository(db *gorm.DB, logger coreport.Logger) *BetRepository {
	return &BetRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func betToModel(bet *entity.Bet) *model.Bet {
	return &model.Bet{
		ID:          bet.ID,
		UserID:      bet.UserID,
		MatchID:     bet.MatchID,
		Choice:      string(bet.Choice),
		StakeCents:  bet.StakeCents,
		PayoutCents: bet.PayoutCents,
		Status:      string(bet.Status),
		CreatedAt:   bet.CreatedAt,
		SettledAt:   bet.SettledAt,
	}
}

func betToEntity(betModel *model.Bet) *entity.Bet {
	return &entity.Bet{
		ID:          betModel.ID,
		UserID:      betModel.UserID,
		MatchID:     betModel.MatchID,
		Choice:      entity.Outcome(betModel.Choice),
		StakeCents:  betModel.StakeCents,
		PayoutCents: betModel.PayoutCents,
		Status:      entity.BetStatus(betModel.Status),
		CreatedAt:   betModel.CreatedAt,
		SettledAt:   betModel.SettledAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *BetRepository) handleDatabaseError(operation string, err error, betID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrBetNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"bet_id": betID,
		"error":  err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		// The partial unique index on open (user_id, match_id) pairs
		// fired; the user already holds an open bet on this match
		return errs.ErrDuplicateOpenBet
	}
	if r.errorClassifier.IsLockError(err) {
		return errs.ErrUserLocked
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create persists a new bet
func (r *BetRepository) Create(ctx context.Context, bet *entity.Bet) error {
	if err := r.db.WithContext(ctx).Create(betToModel(bet)).Error; err != nil {
		return r.handleDatabaseError("creating bet", err, bet.ID)
	}
	return nil
}

// GetByID retrieves a bet by ID
func (r *BetRepository) GetByID(ctx context.Context, id string) (*entity.Bet, error) {
	var betModel model.Bet
	if err := r.db.WithContext(ctx).First(&betModel, "id = ?", id).Error; err != nil {
		return nil, r.handleDatabaseError("getting bet", err, id)
	}
	return betToEntity(&betModel), nil
}

// HasOpenBet reports whether the user already holds an OPEN bet on the match
func (r *BetRepository) HasOpenBet(ctx context.Context, userID, matchID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Bet{}).
		Where("user_id = ? AND match_id = ? AND status = ?", userID, matchID, string(entity.BetOpen)).
		Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("checking open bet", err, "")
	}
	return count > 0, nil
}

// list runs a find with the given scope and converts the results
func (r *BetRepository) list(query *gorm.DB) ([]entity.Bet, error) {
	var betModels []model.Bet
	if err := query.Find(&betModels).Error; err != nil {
		return nil, r.handleDatabaseError("listing bets", err, "")
	}

	bets := make([]entity.Bet, 0, len(betModels))
	for i := range betModels {
		bets = append(bets, *betToEntity(&betModels[i]))
	}
	return bets, nil
}

// ListByUser returns all bets of a user, newest first
func (r *BetRepository) ListByUser(ctx context.Context, userID string) ([]entity.Bet, error) {
	return r.list(r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC"))
}

// ListOpenByUser returns the user's OPEN bets, newest first
func (r *BetRepository) ListOpenByUser(ctx context.Context, userID string) ([]entity.Bet, error) {
	return r.list(r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(entity.BetOpen)).
		Order("created_at DESC"))
}

// ListByMatch returns all bets on a match
func (r *BetRepository) ListByMatch(ctx context.Context, matchID string) ([]entity.Bet, error) {
	return r.list(r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("created_at ASC"))
}

// ListOpenByMatch returns the OPEN bets on a match
func (r *BetRepository) ListOpenByMatch(ctx context.Context, matchID string) ([]entity.Bet, error) {
	return r.list(r.db.WithContext(ctx).
		Where("match_id = ? AND status = ?", matchID, string(entity.BetOpen)).
		Order("created_at ASC"))
}

// ListRecent returns the newest bets across all users
func (r *BetRepository) ListRecent(ctx context.Context, limit int) ([]entity.Bet, error) {
	return r.list(r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit))
}

// Resolve transitions a bet out of OPEN. The update is guarded with
// status = OPEN so a bet can never be resolved twice.
func (r *BetRepository) Resolve(ctx context.Context, id string, status entity.BetStatus, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&model.Bet{}).
		Where("id = ? AND status = ?", id, string(entity.BetOpen)).
		Updates(map[string]interface{}{
			"status":     string(status),
			"settled_at": at,
		})

	if result.Error != nil {
		return r.handleDatabaseError("resolving bet", result.Error, id)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Bet already left OPEN", map[string]any{
			"bet_id": id,
			"target": string(status),
		})
		return errs.ErrBetAlreadyResolved
	}
	return nil
}

// Count returns the total number of bets
func (r *BetRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Bet{}).Count(&count).Error; err != nil {
		return 0, r.handleDatabaseError("counting bets", err, "")
	}
	return count, nil
}

// SumStakesCents sums the stakes of all bets ever placed
func (r *BetRepository) SumStakesCents(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Bet{}).
		Select("COALESCE(SUM(stake_cents), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, r.handleDatabaseError("summing stakes", err, "")
	}
	return total, nil
}

// SumWonPayoutsCents sums the frozen payouts of WON bets
func (r *BetRepository) SumWonPayoutsCents(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Bet{}).
		Where("status = ?", string(entity.BetWon)).
		Select("COALESCE(SUM(payout_cents), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, r.handleDatabaseError("summing payouts", err, "")
	}
	return total, nil
}
