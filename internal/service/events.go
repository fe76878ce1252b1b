package service

import (
	"context"
	"log/slog"

	"petslife-service/internal/adapters/kafka"
)

// EventPublisher pushes domain events to the stream. A nil publisher
// disables eventing without touching the call sites.
type EventPublisher interface {
	Publish(ctx context.Context, event kafka.Event) error
}

func publishEvent(ctx context.Context, events EventPublisher, eventType, entityID, actorID string) {
	if events == nil {
		return
	}
	err := events.Publish(ctx, kafka.Event{
		Type:     eventType,
		EntityID: entityID,
		ActorID:  actorID,
	})
	if err != nil {
		slog.Warn("Failed to publish event", "type", eventType, "entityId", entityID, "error", err)
	}
}
