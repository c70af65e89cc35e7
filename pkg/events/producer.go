package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/fahadfakrul/Stay-Sphere-Server/pkg/logger"
)

// Booking lifecycle event types.
const (
	BookingCreated   = "booking.created"
	BookingUpdated   = "booking.updated"
	BookingCancelled = "booking.cancelled"
)

const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
)

type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

// Producer publishes booking events to Kafka. A nil *Producer is a valid
// disabled producer: every method is a no-op.
type Producer struct {
	writer *kafka.Writer
	source string
	log    *logger.Logger
}

func NewProducer(brokers []string, topic, source string, log *logger.Logger) *Producer {
	if len(brokers) == 0 {
		log.Info("No Kafka brokers configured, booking event publishing disabled")
		return nil
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // Hash by key for per-booking ordering
		RequiredAcks: kafka.RequireOne,
		Compression:  kafka.Snappy,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error(fmt.Sprintf(msg, args...))
		}),
	}

	log.Info("Kafka event producer initialized", "brokers", brokers, "topic", topic)
	return &Producer{
		writer: writer,
		source: source,
		log:    log,
	}
}

// Publish emits an event keyed by the booking identifier. Publishing is best
// effort: a broker failure is logged and never fails the originating request.
func (p *Producer) Publish(ctx context.Context, eventType, key string, payload any) {
	if p == nil {
		return
	}

	event := Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.log.Warn("Failed to encode booking event", "event_type", eventType, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(event.ID)},
			{Key: HeaderEventType, Value: []byte(eventType)},
			{Key: HeaderSource, Value: []byte(p.source)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Warn("Failed to publish booking event",
			"event_type", eventType,
			"key", key,
			"error", err,
		)
		return
	}

	p.log.Debug("Booking event published", "event_type", eventType, "event_id", event.ID)
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
