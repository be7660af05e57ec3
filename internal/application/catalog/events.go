package catalog

import (
	"context"

	"github.com/brandkit/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// publishEvents drains and publishes the recorded events of each source.
// Publishing failures are logged; the change itself is already persisted.
func publishEvents(ctx context.Context, publisher shared.EventPublisher, logger *zap.Logger, sources ...shared.EventSource) {
	for _, agg := range sources {
		events := agg.PullEvents()
		if publisher == nil || len(events) == 0 {
			continue
		}
		if err := publisher.Publish(ctx, events...); err != nil {
			logger.Warn("failed to publish domain events",
				zap.String("aggregate_id", agg.GetID()),
				zap.Int("event_count", len(events)),
				zap.Error(err),
			)
		}
	}
}

// publish publishes standalone events that do not belong to a loaded aggregate
func publish(ctx context.Context, publisher shared.EventPublisher, logger *zap.Logger, events ...shared.DomainEvent) {
	if publisher == nil || len(events) == 0 {
		return
	}
	if err := publisher.Publish(ctx, events...); err != nil {
		logger.Warn("failed to publish domain events", zap.Int("event_count", len(events)), zap.Error(err))
	}
}
