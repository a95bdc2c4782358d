package persistence

import (
	"context"
	"time"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
)

// BetRepository defines persistence operations for bets
type BetRepository interface {
	// Create persists a new bet
	//
	// Possible errors:
	// - ErrDuplicateOpenBet: If the partial unique index on open
	//   (user, match) pairs rejects the insert
	// - ErrDatabaseConnection
	Create(ctx context.Context, bet *entity.Bet) error

	// GetByID retrieves a bet by ID
	//
	// Possible errors:
	// - ErrBetNotFound
	// - ErrDatabaseConnection
	GetByID(ctx context.Context, id string) (*entity.Bet, error)

	// HasOpenBet reports whether the user already holds an OPEN bet on
	// the match. Must be evaluated inside the same transaction as the
	// subsequent insert.
	HasOpenBet(ctx context.Context, userID, matchID string) (bool, error)

	// ListByUser returns all bets of a user, newest first
	ListByUser(ctx context.Context, userID string) ([]entity.Bet, error)

	// ListOpenByUser returns the user's OPEN bets, newest first
	ListOpenByUser(ctx context.Context, userID string) ([]entity.Bet, error)

	// ListByMatch returns all bets on a match
	ListByMatch(ctx context.Context, matchID string) ([]entity.Bet, error)

	// ListOpenByMatch returns the OPEN bets on a match. Settlement input.
	ListOpenByMatch(ctx context.Context, matchID string) ([]entity.Bet, error)

	// ListRecent returns the newest bets across all users. Admin surface.
	ListRecent(ctx context.Context, limit int) ([]entity.Bet, error)

	// Resolve transitions a bet out of OPEN. The update is guarded with
	// status = OPEN so a bet can never be resolved twice.
	//
	// Possible errors:
	// - ErrBetAlreadyResolved: If the bet had already left OPEN
	// - ErrDatabaseConnection
	Resolve(ctx context.Context, id string, status entity.BetStatus, at time.Time) error

	// Count returns the total number of bets. Admin overview.
	Count(ctx context.Context) (int64, error)

	// SumStakesCents sums the stakes of all bets ever placed
	SumStakesCents(ctx context.Context) (int64, error)

	// SumWonPayoutsCents sums the frozen payouts of WON bets
	SumWonPayoutsCents(ctx context.Context) (int64, error)
}
