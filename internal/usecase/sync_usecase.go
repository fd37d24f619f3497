package usecase

import (
	"context"

	"placebook/internal/domain/entity"
)

// SyncUsecase acknowledges pending writes delivered by the event queue
type SyncUsecase interface {
	// ApplySyncEvent marks the row synced, or removes it for pending_delete.
	// Events overtaken by a newer write are acknowledged without changes.
	ApplySyncEvent(ctx context.Context, event *entity.SyncEvent) error
}
