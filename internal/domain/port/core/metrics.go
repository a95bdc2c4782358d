package core

// Metrics abstracts the operational counters emitted by the engines.
// The prometheus adapter implements it; tests use the noop variant.
type Metrics interface {
	// BetPlaced records a successfully placed bet and its stake
	BetPlaced(stakeCents int64)
	// BetCancelled records a cancelled bet and the refunded stake
	BetCancelled(stakeCents int64)
	// MatchSettled records a completed settlement run
	MatchSettled(wonBets, lostBets int)
	// PayoutCredited records a winning payout applied to a balance
	PayoutCredited(amountCents int64)
}
