package events

import "context"

// BetPlaced is emitted after a bet placement commits.
type BetPlaced struct {
	BetID       string `json:"betId"`
	UserID      string `json:"userId"`
	MatchID     string `json:"matchId"`
	Choice      string `json:"choice"`
	StakeCents  int64  `json:"stakeCents"`
	PayoutCents int64  `json:"payoutCents"`
	TsUnixMs    int64  `json:"tsUnixMs"`
}

// BetCancelled is emitted after a cancellation refund commits.
type BetCancelled struct {
	BetID      string `json:"betId"`
	UserID     string `json:"userId"`
	MatchID    string `json:"matchId"`
	StakeCents int64  `json:"stakeCents"`
	TsUnixMs   int64  `json:"tsUnixMs"`
}

// MatchSettled is emitted once per match after settlement commits.
type MatchSettled struct {
	MatchID      string `json:"matchId"`
	Result       string `json:"result"`
	WonBets      int    `json:"wonBets"`
	LostBets     int    `json:"lostBets"`
	PaidOutCents int64  `json:"paidOutCents"`
	TsUnixMs     int64  `json:"tsUnixMs"`
}

// Publisher pushes ledger events to the message bus. Publishing happens
// after the database transaction commits; a publish failure is logged
// and never rolls the ledger back.
type Publisher interface {
	PublishBetPlaced(ctx context.Context, e BetPlaced) error
	PublishBetCancelled(ctx context.Context, e BetCancelled) error
	PublishMatchSettled(ctx context.Context, e MatchSettled) error
}
