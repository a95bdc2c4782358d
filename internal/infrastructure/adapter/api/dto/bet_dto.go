package dto

import (
	"time"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
)

// PlaceBetRequest is the payload for placing a bet
type PlaceBetRequest struct {
	MatchID string `json:"matchId" binding:"required"`
	Choice  string `json:"choice" binding:"required"`
	Amount  string `json:"amount" binding:"required"`
}

// BetResponse represents a bet in API responses
type BetResponse struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	MatchID   string     `json:"matchId"`
	Choice    string     `json:"choice"`
	Stake     string     `json:"stake"`
	Payout    string     `json:"payout"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	SettledAt *time.Time `json:"settledAt,omitempty"`
}

// ToBetResponse maps a bet entity to its API representation
func ToBetResponse(bet *entity.Bet) BetResponse {
	return BetResponse{
		ID:        bet.ID,
		UserID:    bet.UserID,
		MatchID:   bet.MatchID,
		Choice:    string(bet.Choice),
		Stake:     entity.FormatCents(bet.StakeCents),
		Payout:    entity.FormatCents(bet.PayoutCents),
		Status:    string(bet.Status),
		CreatedAt: bet.CreatedAt,
		SettledAt: bet.SettledAt,
	}
}

// ToBetResponses maps a slice of bet entities
func ToBetResponses(bets []entity.Bet) []BetResponse {
	responses := make([]BetResponse, 0, len(bets))
	for i := range bets {
		responses = append(responses, ToBetResponse(&bets[i]))
	}
	return responses
}
