package events

import (
	"context"

	eventport "github.com/parlayhq/wager-engine/internal/domain/port/events"
)

// NoopPublisher discards all events.
// Used when the message bus is disabled.
type NoopPublisher struct{}

// NewNoopPublisher creates a no-op publisher
func NewNoopPublisher() eventport.Publisher {
	return &NoopPublisher{}
}

// PublishBetPlaced does nothing
func (p *NoopPublisher) PublishBetPlaced(ctx context.Context, e eventport.BetPlaced) error {
	return nil
}

// PublishBetCancelled does nothing
func (p *NoopPublisher) PublishBetCancelled(ctx context.Context, e eventport.BetCancelled) error {
	return nil
}

// PublishMatchSettled does nothing
func (p *NoopPublisher) PublishMatchSettled(ctx context.Context, e eventport.MatchSettled) error {
	return nil
}
