package events

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
	eventport "github.com/parlayhq/wager-engine/internal/domain/port/events"
)

// Event types carried in the message headers
const (
	eventTypeBetPlaced    = "bet.placed"
	eventTypeBetCancelled = "bet.cancelled"
	eventTypeMatchSettled = "match.settled"
)

// KafkaPublisher pushes ledger events to a Kafka topic
type KafkaPublisher struct {
	writer *kafka.Writer
	logger coreport.Logger
}

// NewKafkaPublisher creates a publisher backed by the given writer
func NewKafkaPublisher(writer *kafka.Writer, logger coreport.Logger) eventport.Publisher {
	return &KafkaPublisher{
		writer: writer,
		logger: logger,
	}
}

// NewWriter creates a Kafka writer for the ledger events topic
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

// PublishBetPlaced publishes a bet placement event keyed by match
func (p *KafkaPublisher) PublishBetPlaced(ctx context.Context, e eventport.BetPlaced) error {
	return p.publish(ctx, eventTypeBetPlaced, e.MatchID, e)
}

// PublishBetCancelled publishes a bet cancellation event keyed by match
func (p *KafkaPublisher) PublishBetCancelled(ctx context.Context, e eventport.BetCancelled) error {
	return p.publish(ctx, eventTypeBetCancelled, e.MatchID, e)
}

// PublishMatchSettled publishes a settlement event keyed by match
func (p *KafkaPublisher) PublishMatchSettled(ctx context.Context, e eventport.MatchSettled) error {
	return p.publish(ctx, eventTypeMatchSettled, e.MatchID, e)
}

// publish serializes the event and writes it keyed by match so all
// events of one match land on the same partition in order.
func (p *KafkaPublisher) publish(ctx context.Context, eventType, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(eventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish event", map[string]any{
			"event_type": eventType,
			"key":        key,
			"error":      err.Error(),
		})
		return err
	}

	p.logger.Debug("Published event", map[string]any{
		"event_type": eventType,
		"key":        key,
	})
	return nil
}

// Close flushes and closes the underlying writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
