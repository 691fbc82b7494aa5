package services

import (
	"context"
	"log/slog"

	"github.com/SAP-F-2025/learning-data-service/internal/events"
)

// publishEvent runs after the unit of work committed. A failed publish is
// logged and never undoes or fails the mutation.
func publishEvent(ctx context.Context, publisher events.EventPublisher, logger *slog.Logger, eventType string, data interface{}) {
	if err := publisher.Publish(ctx, eventType, data); err != nil {
		logger.Warn("Failed to publish event", "event_type", eventType, "error", err)
	}
}
