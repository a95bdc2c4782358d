package entity

import (
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/parlayhq/wager-engine/internal/domain/error"
	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
)

// BetStatus is the bet lifecycle state. A bet leaves OPEN exactly once:
// to CANCELLED via a refund, or to WON/LOST via settlement. Non-OPEN
// bets are immutable history.
type BetStatus string

const (
	BetOpen      BetStatus = "OPEN"
	BetWon       BetStatus = "WON"
	BetLost      BetStatus = "LOST"
	BetCancelled BetStatus = "CANCELLED"
)

// Bet represents a stake held against a match outcome. PayoutCents is
// the potential payout frozen at placement time (stake x odds at that
// instant); the odds on the match may move afterwards without touching
// existing bets.
type Bet struct {
	ID          string
	UserID      string
	MatchID     string
	Choice      Outcome
	StakeCents  int64
	PayoutCents int64
	Status      BetStatus
	CreatedAt   time.Time
	SettledAt   *time.Time
}

// NewBet creates an OPEN bet, freezing the payout from the odds quoted
// at this instant.
func NewBet(id, userID, matchID string, choice Outcome, stakeCents int64, odds decimal.Decimal, timeProvider coreport.TimeProvider) (*Bet, error) {
	if !IsValidOutcome(string(choice)) {
		return nil, errs.ErrOutcomeUnavailable
	}
	if stakeCents <= 0 {
		return nil, errs.ErrInvalidStake
	}
	if !odds.IsPositive() {
		return nil, errs.ErrOutcomeUnavailable
	}

	return &Bet{
		ID:          id,
		UserID:      userID,
		MatchID:     matchID,
		Choice:      choice,
		StakeCents:  stakeCents,
		PayoutCents: MulOdds(stakeCents, odds),
		Status:      BetOpen,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// IsOpen reports whether the bet can still be cancelled or settled
func (b *Bet) IsOpen() bool {
	return b.Status == BetOpen
}

// Stake returns the stake as a string with 2 decimal places
func (b *Bet) Stake() string {
	return FormatCents(b.StakeCents)
}

// Payout returns the frozen potential payout as a string
func (b *Bet) Payout() string {
	return FormatCents(b.PayoutCents)
}
