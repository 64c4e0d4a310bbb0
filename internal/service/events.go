package service

import (
	"context"

	"github.com/Skotchmaster/workshop/internal/logging"
)

type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}

// publish never fails the caller; the mutation is already committed.
func publish(ctx context.Context, p EventPublisher, topic, key string, event map[string]any) {
	if p == nil {
		return
	}
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Warn("publish_event_failed", "topic", topic, "key", key, "type", event["type"], "error", err)
	}
}
