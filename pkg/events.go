package pkg

import (
	"log/slog"

	"github.com/SAP-F-2025/learning-data-service/internal/config"
	"github.com/SAP-F-2025/learning-data-service/internal/events"
)

// NewEventPublisher returns a Kafka publisher when brokers are configured and
// an in-memory one otherwise
func NewEventPublisher(cfg *config.Config, logger *slog.Logger) (events.EventPublisher, error) {
	if len(cfg.Events.KafkaBrokers) == 0 {
		logger.Info("No Kafka brokers configured, change events stay in memory")
		publisher, _ := events.NewInMemoryPublisher(cfg.Events.TopicPrefix, logger)
		return publisher, nil
	}
	return events.NewKafkaPublisher(cfg.Events.KafkaBrokers, cfg.Events.TopicPrefix, logger)
}
