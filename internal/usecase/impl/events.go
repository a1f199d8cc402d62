package impl

import (
	"context"
	"log/slog"

	deliverycontext "identity/internal/delivery/context"
	"identity/internal/domain/service"
)

// publishEvent emits a committed identity change. Delivery is best effort:
// a broker failure is logged and never fails the request that made the change.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.IdentityEvent) {
	if publisher == nil {
		return
	}

	event.RequestID = deliverycontext.RequestIDFromContext(ctx)
	if err := publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		logger.Warn("Failed to publish identity event",
			slog.String("event_type", string(event.Type)),
			slog.String("identityID", event.IdentityID),
			slog.Any("error", err),
		)
	}
}
