package impl

import (
	"context"
	"log/slog"

	deliverycontext "placebook/internal/delivery/context"
	"placebook/internal/domain/entity"
	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/domain/repository"
	"placebook/internal/errors"
	"placebook/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type syncService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// SyncServiceParams holds dependencies for SyncService, injected by Fx.
type SyncServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewSyncService creates a new sync service instance
func NewSyncService(params SyncServiceParams) usecase.SyncUsecase {
	return &syncService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *syncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ApplySyncEvent acknowledges one pending write. Redelivered and stale events
// are no-ops, so the worker may ack them.
func (srv *syncService) ApplySyncEvent(ctx context.Context, event *entity.SyncEvent) error {
	entityID, err := validateSyncEvent(event)
	if err != nil {
		return err
	}

	logger := srv.log(ctx).With(
		slog.String("event_id", event.EventID),
		slog.String("entity_type", string(event.EntityType)),
		slog.String("entity_id", event.EntityID),
		slog.String("status", event.Status.String()),
	)

	if event.Status == entity.SyncStatusSynced {
		logger.Debug("Ignoring already synced event")

		return nil
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		switch event.EntityType {
		case entity.SyncEntityLocation:
			return applyLocationSync(ctx, repoFactory.LocationRepo(), entityID, event.Status, logger)
		case entity.SyncEntityCollection:
			return applyCollectionSync(ctx, repoFactory, entityID, event.Status, logger)
		default:
			return domainerrors.ErrValidationFailed.WithDetails("unknown entity type")
		}
	})
	if err != nil {
		return errors.Wrap(err, "failed to apply sync event")
	}

	return nil
}

func validateSyncEvent(event *entity.SyncEvent) (uuid.UUID, error) {
	if event == nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("missing sync event")
	}

	if !event.Status.IsValid() {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("unknown sync status " + event.Status.String())
	}

	if event.EntityType != entity.SyncEntityLocation && event.EntityType != entity.SyncEntityCollection {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("unknown entity type " + string(event.EntityType))
	}

	entityID, err := uuid.Parse(event.EntityID)
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid entity id")
	}

	return entityID, nil
}

func applyLocationSync(ctx context.Context, repo repository.LocationRepository, id uuid.UUID, status entity.SyncStatus, logger *slog.Logger) error {
	if status == entity.SyncStatusPendingDelete {
		err := repo.DeleteLocation(ctx, id)
		if errors.Is(err, repository.ErrLocationNotFound) {
			logger.Debug("Location already removed")

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to delete location")
		}

		logger.Info("Location removed")

		return nil
	}

	changed, err := repo.CompareAndSetSyncStatus(ctx, id, status, entity.SyncStatusSynced)
	if err != nil {
		return errors.Wrap(err, "failed to mark location synced")
	}

	if !changed {
		logger.Debug("Location changed since event, skipping")
	}

	return nil
}

// applyCollectionSync removes the locations of a deleted collection before the collection row.
func applyCollectionSync(ctx context.Context, repoFactory repository.RepositoryFactory, id uuid.UUID, status entity.SyncStatus, logger *slog.Logger) error {
	collectionRepo := repoFactory.CollectionRepo()

	if status == entity.SyncStatusPendingDelete {
		if err := repoFactory.LocationRepo().DeleteLocationsByCollection(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete collection locations")
		}

		err := collectionRepo.DeleteCollection(ctx, id)
		if errors.Is(err, repository.ErrCollectionNotFound) {
			logger.Debug("Collection already removed")

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to delete collection")
		}

		logger.Info("Collection removed")

		return nil
	}

	changed, err := collectionRepo.CompareAndSetSyncStatus(ctx, id, status, entity.SyncStatusSynced)
	if err != nil {
		return errors.Wrap(err, "failed to mark collection synced")
	}

	if !changed {
		logger.Debug("Collection changed since event, skipping")
	}

	return nil
}
