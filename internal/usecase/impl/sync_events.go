package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "placebook/internal/delivery/context"
	"placebook/internal/domain/entity"
	"placebook/internal/domain/service"

	"github.com/google/uuid"
)

func newSyncEvent(ctx context.Context, entityType entity.SyncEntityType, entityID, ownerID uuid.UUID, status entity.SyncStatus, now time.Time) *entity.SyncEvent {
	return &entity.SyncEvent{
		EventID:    uuid.NewString(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EntityType: entityType,
		EntityID:   entityID.String(),
		OwnerID:    ownerID.String(),
		Status:     status,
		OccurredAt: now.Unix(),
	}
}

// publishSyncEvent runs after commit. A lost event leaves the row pending and
// never fails the write that produced it.
func publishSyncEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *entity.SyncEvent) {
	if publisher == nil {
		return
	}

	if err := publisher.PublishSyncEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish sync event",
			slog.String("event_id", event.EventID),
			slog.String("entity_type", string(event.EntityType)),
			slog.String("entity_id", event.EntityID),
			slog.String("status", event.Status.String()),
			slog.Any("error", err),
		)
	}
}

// nextWriteStatus keeps a row that was never acknowledged in pending_create.
func nextWriteStatus(current entity.SyncStatus) entity.SyncStatus {
	if current == entity.SyncStatusPendingCreate {
		return entity.SyncStatusPendingCreate
	}

	return entity.SyncStatusPendingUpdate
}
