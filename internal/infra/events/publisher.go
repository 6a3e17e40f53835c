// Package events publishes domain events so other instances can react to
// booking and pricing mutations, primarily by dropping their cached reads.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"staymarket/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	TypeBookingCreated     = "booking.created"
	TypeBookingCancelled   = "booking.cancelled"
	TypePricingRuleChanged = "pricing_rule.changed"
	TypePropertyRepriced   = "property.repriced"
)

type Event struct {
	ID         uuid.UUID       `json:"id"`
	Type       string          `json:"type"`
	PropertyID uuid.UUID       `json:"property_id"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func New(eventType string, propertyID uuid.UUID, payload any) (Event, error) {
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return Event{}, err
		}
		raw = data
	}
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		PropertyID: propertyID,
		Payload:    raw,
		OccurredAt: time.Now().UTC(),
	}, nil
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type kafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewKafkaPublisher(cfg config.KafkaConfig, logger *slog.Logger) Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}
	return &kafkaPublisher{writer: writer, logger: logger}
}

// Publish keys messages by property so per-property ordering survives
// partitioning.
func (p *kafkaPublisher) Publish(ctx context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.PropertyID.String()),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("failed to publish event", "type", event.Type, "error", err)
		return err
	}
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops events; used when Kafka is disabled by configuration.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }
