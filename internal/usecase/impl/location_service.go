package impl

import (
	"context"
	"log/slog"
	"time"

	"placebook/config"
	deliverycontext "placebook/internal/delivery/context"
	"placebook/internal/domain/entity"
	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/domain/repository"
	"placebook/internal/domain/service"
	"placebook/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type locationService struct {
	txManager      repository.TransactionManager
	locationRepo   repository.LocationRepository
	collectionRepo repository.CollectionRepository
	publisher      service.EventPublisher
	maxLocations   int
	logger         *slog.Logger
	now            func() time.Time
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	LocationRepo   repository.LocationRepository
	CollectionRepo repository.CollectionRepository
	Publisher      service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	maxLocations := 0
	if params.Config != nil && params.Config.Collections != nil {
		maxLocations = params.Config.Collections.MaxLocationsPerCollection
	}

	return &locationService{
		txManager:      params.TxManager,
		locationRepo:   params.LocationRepo,
		collectionRepo: params.CollectionRepo,
		publisher:      params.Publisher,
		maxLocations:   maxLocations,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListLocations returns the locations of a collection owned by ownerID
func (srv *locationService) ListLocations(ctx context.Context, ownerID, collectionID uuid.UUID) ([]*entity.Location, error) {
	if _, err := findOwnedCollection(ctx, srv.collectionRepo, ownerID, collectionID); err != nil {
		return nil, err
	}

	locations, err := srv.locationRepo.FindLocationsByCollection(ctx, collectionID)
	if err != nil {
		return nil, toAppError(err, "failed to find locations by collection")
	}

	return locations, nil
}

// GetLocation returns a single location if its collection belongs to ownerID
func (srv *locationService) GetLocation(ctx context.Context, ownerID, locationID uuid.UUID) (*entity.Location, error) {
	return findOwnedLocation(ctx, srv.locationRepo, srv.collectionRepo, ownerID, locationID)
}

// AddLocation stores a manually entered location
func (srv *locationService) AddLocation(ctx context.Context, ownerID, collectionID uuid.UUID, input *usecase.AddLocationInput) (*entity.Location, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("location input is required")
	}

	coord := entity.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude}
	if !coord.IsValid() {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	location := entity.NewLocation(entity.LocationParams{
		CollectionID:    collectionID,
		ExternalPlaceID: input.ExternalPlaceID,
		Name:            input.Name,
		Address:         input.Address,
		Coordinate:      coord,
		Category:        input.Category,
		Notes:           input.Notes,
		Tags:            input.Tags,
		ImageURLs:       input.ImageURLs,
		IsFavorite:      input.IsFavorite,
		Origin:          entity.OriginSaved,
		SyncStatus:      entity.SyncStatusPendingCreate,
		Now:             srv.now(),
	})

	return srv.create(ctx, ownerID, location)
}

// SaveResolvedLocation stores a copy of a transient location in a collection
func (srv *locationService) SaveResolvedLocation(ctx context.Context, ownerID, collectionID uuid.UUID, location *entity.Location) (*entity.Location, error) {
	if location == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("location is required")
	}

	if !location.Coordinate().IsValid() {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	return srv.create(ctx, ownerID, location.ToSaved(collectionID, srv.now()))
}

func (srv *locationService) create(ctx context.Context, ownerID uuid.UUID, location *entity.Location) (*entity.Location, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		locationRepo := repoFactory.LocationRepo()

		if _, err := findOwnedCollection(ctx, repoFactory.CollectionRepo(), ownerID, location.CollectionID); err != nil {
			return err
		}

		if srv.maxLocations > 0 {
			count, err := locationRepo.CountLocationsByCollection(ctx, location.CollectionID)
			if err != nil {
				return toAppError(err, "failed to count locations by collection")
			}
			if count >= int64(srv.maxLocations) {
				return domainerrors.ErrLocationLimitExceeded
			}
		}

		if err := locationRepo.CreateLocation(ctx, location); err != nil {
			return toAppError(err, "failed to create location")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Location saved",
		slog.String("location_id", location.ID.String()),
		slog.String("collection_id", location.CollectionID.String()),
	)

	srv.publish(ctx, location, ownerID)

	return location, nil
}

// UpdateLocation applies a partial update to a saved location
func (srv *locationService) UpdateLocation(ctx context.Context, ownerID, locationID uuid.UUID, input *usecase.UpdateLocationInput) (*entity.Location, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("location input is required")
	}

	var updated *entity.Location
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		locationRepo := repoFactory.LocationRepo()

		location, err := findOwnedLocation(ctx, locationRepo, repoFactory.CollectionRepo(), ownerID, locationID)
		if err != nil {
			return err
		}

		if err := applyLocationUpdates(location, input); err != nil {
			return err
		}

		location.SyncStatus = nextWriteStatus(location.SyncStatus)
		location.UpdatedAt = srv.now()

		if err := locationRepo.UpdateLocation(ctx, location); err != nil {
			return toAppError(err, "failed to update location")
		}

		updated = location

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, updated, ownerID)

	return updated, nil
}

// applyLocationUpdates applies the update input to a location
func applyLocationUpdates(location *entity.Location, input *usecase.UpdateLocationInput) error {
	if input.Latitude != nil || input.Longitude != nil {
		coord := location.Coordinate()
		if input.Latitude != nil {
			coord.Latitude = *input.Latitude
		}
		if input.Longitude != nil {
			coord.Longitude = *input.Longitude
		}
		if !coord.IsValid() {
			return domainerrors.ErrInvalidCoordinate
		}
		location.MoveTo(coord)
	}

	if input.Name != nil {
		location.Rename(*input.Name)
	}
	if input.Address != nil {
		location.Address = *input.Address
	}
	if input.Category != nil {
		location.Category = *input.Category
	}
	if input.Notes != nil {
		location.Notes = *input.Notes
	}
	if input.Tags != nil {
		location.Tags = input.Tags
	}
	if input.ImageURLs != nil {
		location.ImageURLs = input.ImageURLs
	}
	if input.IsFavorite != nil {
		location.IsFavorite = *input.IsFavorite
	}

	return nil
}

// DeleteLocation marks a location pending_delete; the sync worker removes the row.
func (srv *locationService) DeleteLocation(ctx context.Context, ownerID, locationID uuid.UUID) error {
	var deleted *entity.Location
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		locationRepo := repoFactory.LocationRepo()

		location, err := findOwnedLocation(ctx, locationRepo, repoFactory.CollectionRepo(), ownerID, locationID)
		if err != nil {
			return err
		}

		location.SyncStatus = entity.SyncStatusPendingDelete
		location.UpdatedAt = srv.now()

		if err := locationRepo.UpdateLocation(ctx, location); err != nil {
			return toAppError(err, "failed to mark location deleted")
		}

		deleted = location

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Location deleted", slog.String("location_id", locationID.String()))

	srv.publish(ctx, deleted, ownerID)

	return nil
}

func (srv *locationService) publish(ctx context.Context, location *entity.Location, ownerID uuid.UUID) {
	event := newSyncEvent(ctx, entity.SyncEntityLocation, location.ID, ownerID, location.SyncStatus, srv.now())
	publishSyncEvent(ctx, srv.publisher, srv.log(ctx), event)
}

// findOwnedCollection loads a collection and checks that ownerID owns it
func findOwnedCollection(ctx context.Context, repo repository.CollectionRepository, ownerID, collectionID uuid.UUID) (*entity.Collection, error) {
	collection, err := repo.FindCollectionByID(ctx, collectionID)
	if err != nil {
		return nil, toAppError(err, "failed to find collection by ID")
	}

	if !collection.IsOwnedBy(ownerID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("collection belongs to another owner")
	}

	return collection, nil
}

func findOwnedLocation(ctx context.Context, locationRepo repository.LocationRepository, collectionRepo repository.CollectionRepository, ownerID, locationID uuid.UUID) (*entity.Location, error) {
	location, err := locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		return nil, toAppError(err, "failed to find location by ID")
	}

	if _, err := findOwnedCollection(ctx, collectionRepo, ownerID, location.CollectionID); err != nil {
		return nil, err
	}

	return location, nil
}
