package services

import (
	"context"
	"log/slog"

	"github.com/aiflow/aiflow/pkg/eventbus"
)

// publish emits a lifecycle event. Delivery failures are logged, never returned:
// the state change has already happened.
func publish(ctx context.Context, publisher eventbus.EventPublisher, logger *slog.Logger, key string, event eventbus.Event) {
	if publisher == nil {
		return
	}

	if err := publisher.Publish(ctx, key, event); err != nil {
		logger.ErrorContext(ctx, "failed to publish event",
			"event_type", event.GetType(),
			"key", key,
			"error", err,
		)
	}
}
