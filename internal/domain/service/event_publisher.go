package service

import (
	"context"

	"placebook/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSyncEvent publishes a sync event for async processing
	PublishSyncEvent(ctx context.Context, event *entity.SyncEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
