package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/SAP-F-2025/learning-data-service/internal/metrics"
)

// Event types published after a mutation commits
const (
	UserCreated         = "user.created"
	UserLoggedIn        = "user.logged_in"
	AssessmentCompleted = "assessment.completed"
	ChatRecorded        = "chat.recorded"
	HackathonCreated    = "hackathon.created"
	HackathonJoined     = "hackathon.joined"
	DashboardRecomputed = "dashboard.recomputed"
)

// Event is the JSON envelope written to the message payload
type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

// EventPublisher publishes change notifications. Publishing is best effort:
// callers have already committed and only log a failed publish.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data interface{}) error
	Close() error
}

type watermillPublisher struct {
	publisher   message.Publisher
	topicPrefix string
	logger      *slog.Logger
}

// NewPublisher wraps any watermill publisher. Each event type goes to topicPrefix + type.
func NewPublisher(publisher message.Publisher, topicPrefix string, logger *slog.Logger) EventPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &watermillPublisher{
		publisher:   publisher,
		topicPrefix: topicPrefix,
		logger:      logger.With("component", "events"),
	}
}

// NewKafkaPublisher publishes to Kafka through watermill-kafka
func NewKafkaPublisher(brokers []string, topicPrefix string, logger *slog.Logger) (EventPublisher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	publisher, err := kafka.NewPublisher(
		kafka.PublisherConfig{
			Brokers:   brokers,
			Marshaler: kafka.DefaultMarshaler{},
		},
		watermill.NewSlogLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}
	return NewPublisher(publisher, topicPrefix, logger), nil
}

// NewInMemoryPublisher is used when no broker is configured. Messages are
// dropped unless something subscribes to the returned pub/sub.
func NewInMemoryPublisher(topicPrefix string, logger *slog.Logger) (EventPublisher, *gochannel.GoChannel) {
	if logger == nil {
		logger = slog.Default()
	}
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger))
	return NewPublisher(pubSub, topicPrefix, logger), pubSub
}

func (p *watermillPublisher) Topic(eventType string) string {
	return p.topicPrefix + eventType
}

func (p *watermillPublisher) Publish(ctx context.Context, eventType string, data interface{}) (err error) {
	topic := p.Topic(eventType)
	defer func() {
		metrics.PublishedEvents.WithLabelValues(topic, metrics.Outcome(err)).Inc()
	}()

	event := Event{
		ID:         watermill.NewUUID(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", eventType, err)
	}

	msg := message.NewMessage(event.ID, payload)
	msg.Metadata.Set("event_type", eventType)
	msg.SetContext(ctx)

	if err := p.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", eventType, err)
	}

	p.logger.DebugContext(ctx, "Event published", "type", eventType, "topic", topic, "event_id", event.ID)
	return nil
}

func (p *watermillPublisher) Close() error {
	return p.publisher.Close()
}

// NopPublisher discards every event
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, interface{}) error { return nil }
func (NopPublisher) Close() error                                         { return nil }
