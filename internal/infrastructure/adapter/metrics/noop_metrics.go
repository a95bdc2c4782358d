package metrics

import (
	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
)

// NoopMetrics discards all observations.
// Used in tests and when metrics are disabled.
type NoopMetrics struct{}

// NewNoopMetrics creates a no-op metrics recorder
func NewNoopMetrics() coreport.Metrics {
	return &NoopMetrics{}
}

// BetPlaced does nothing
func (m *NoopMetrics) BetPlaced(stakeCents int64) {}

// BetCancelled does nothing
func (m *NoopMetrics) BetCancelled(stakeCents int64) {}

// MatchSettled does nothing
func (m *NoopMetrics) MatchSettled(wonBets, lostBets int) {}

// PayoutCredited does nothing
func (m *NoopMetrics) PayoutCredited(amountCents int64) {}
