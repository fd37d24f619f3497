package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"placebook/config"
	deliverycontext "placebook/internal/delivery/context"
	"placebook/internal/domain/entity"
	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/domain/repository"
	"placebook/internal/domain/service"
	"placebook/internal/errors"
	"placebook/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

const shareTokenAttempts = 3

type collectionService struct {
	txManager      repository.TransactionManager
	collectionRepo repository.CollectionRepository
	locationRepo   repository.LocationRepository
	qrCode         service.QRCodeService
	publisher      service.EventPublisher
	maxCollections int
	logger         *slog.Logger
	now            func() time.Time
	newShareToken  func() string
}

// CollectionServiceParams holds dependencies for CollectionService, injected by Fx.
type CollectionServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CollectionRepo repository.CollectionRepository
	LocationRepo   repository.LocationRepository
	QRCode         service.QRCodeService
	Publisher      service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCollectionService creates a new collection service instance
func NewCollectionService(params CollectionServiceParams) usecase.CollectionUsecase {
	maxCollections := 0
	if params.Config != nil && params.Config.Collections != nil {
		maxCollections = params.Config.Collections.MaxCollectionsPerOwner
	}

	return &collectionService{
		txManager:      params.TxManager,
		collectionRepo: params.CollectionRepo,
		locationRepo:   params.LocationRepo,
		qrCode:         params.QRCode,
		publisher:      params.Publisher,
		maxCollections: maxCollections,
		logger:         params.Logger,
		now:            time.Now,
		newShareToken:  generateShareToken,
	}
}

// generateShareToken returns 32 hex characters of a random UUID
func generateShareToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func (srv *collectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCollections returns the collections of an owner, default first
func (srv *collectionService) ListCollections(ctx context.Context, ownerID uuid.UUID) ([]*entity.Collection, error) {
	collections, err := srv.collectionRepo.FindCollectionsByOwner(ctx, ownerID)
	if err != nil {
		return nil, toAppError(err, "failed to find collections by owner")
	}

	return collections, nil
}

// GetCollection returns a collection owned by ownerID
func (srv *collectionService) GetCollection(ctx context.Context, ownerID, collectionID uuid.UUID) (*entity.Collection, error) {
	return findOwnedCollection(ctx, srv.collectionRepo, ownerID, collectionID)
}

// CreateCollection creates a private collection. The owner's first collection becomes the default.
func (srv *collectionService) CreateCollection(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateCollectionInput) (*entity.Collection, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("collection name is required")
	}

	now := srv.now()
	collection := &entity.Collection{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Name:       strings.TrimSpace(input.Name),
		Icon:       input.Icon,
		Visibility: entity.VisibilityPrivate,
		SyncStatus: entity.SyncStatusPendingCreate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		collectionRepo := repoFactory.CollectionRepo()

		count, err := collectionRepo.CountCollectionsByOwner(ctx, ownerID)
		if err != nil {
			return toAppError(err, "failed to count collections by owner")
		}
		if srv.maxCollections > 0 && count >= int64(srv.maxCollections) {
			return domainerrors.ErrCollectionLimitExceeded
		}

		collection.IsDefault = count == 0

		if err := collectionRepo.CreateCollection(ctx, collection); err != nil {
			return toAppError(err, "failed to create collection")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Collection created",
		slog.String("collection_id", collection.ID.String()),
		slog.Bool("is_default", collection.IsDefault),
	)

	srv.publish(ctx, collection)

	return collection, nil
}

// UpdateCollection renames a collection or changes its visibility.
// Making a collection private revokes its share link.
func (srv *collectionService) UpdateCollection(ctx context.Context, ownerID, collectionID uuid.UUID, input *usecase.UpdateCollectionInput) (*entity.Collection, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("collection input is required")
	}

	if input.Visibility != nil && !input.Visibility.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown visibility " + input.Visibility.String())
	}

	var updated *entity.Collection
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		collectionRepo := repoFactory.CollectionRepo()

		collection, err := findOwnedCollection(ctx, collectionRepo, ownerID, collectionID)
		if err != nil {
			return err
		}

		if input.Name != nil {
			collection.Name = strings.TrimSpace(*input.Name)
		}
		if input.Icon != nil {
			collection.Icon = *input.Icon
		}
		if input.Visibility != nil {
			collection.Visibility = *input.Visibility
			if collection.Visibility == entity.VisibilityPrivate {
				collection.Share = nil
			}
		}

		collection.SyncStatus = nextWriteStatus(collection.SyncStatus)
		collection.UpdatedAt = srv.now()

		if err := collectionRepo.UpdateCollection(ctx, collection); err != nil {
			return toAppError(err, "failed to update collection")
		}

		updated = collection

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, updated)

	return updated, nil
}

// DeleteCollection marks a collection and all of its locations pending_delete
// in one transaction. The default collection cannot be deleted.
func (srv *collectionService) DeleteCollection(ctx context.Context, ownerID, collectionID uuid.UUID) error {
	var deleted *entity.Collection
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		collectionRepo := repoFactory.CollectionRepo()

		collection, err := findOwnedCollection(ctx, collectionRepo, ownerID, collectionID)
		if err != nil {
			return err
		}

		if collection.IsDefault {
			return domainerrors.ErrDefaultCollectionLocked
		}

		if err := repoFactory.LocationRepo().MarkLocationsDeletedByCollection(ctx, collectionID); err != nil {
			return toAppError(err, "failed to mark locations deleted")
		}

		collection.SyncStatus = entity.SyncStatusPendingDelete
		collection.UpdatedAt = srv.now()

		if err := collectionRepo.UpdateCollection(ctx, collection); err != nil {
			return toAppError(err, "failed to mark collection deleted")
		}

		deleted = collection

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Collection deleted", slog.String("collection_id", collectionID.String()))

	srv.publish(ctx, deleted)

	return nil
}

// ShareCollection issues a share link. Sharing an already shared collection
// returns the existing link.
func (srv *collectionService) ShareCollection(ctx context.Context, ownerID, collectionID uuid.UUID) (*entity.Collection, error) {
	for attempt := 1; attempt <= shareTokenAttempts; attempt++ {
		shared, err := srv.tryShare(ctx, ownerID, collectionID)
		if err == nil {
			return shared, nil
		}

		if !errors.Is(err, repository.ErrShareTokenConflict) {
			return nil, err
		}

		srv.log(ctx).Warn("Share token collision, retrying",
			slog.String("collection_id", collectionID.String()),
			slog.Int("attempt", attempt),
		)
	}

	return nil, domainerrors.ErrInternalError.WrapMessage("could not allocate a unique share token")
}

func (srv *collectionService) tryShare(ctx context.Context, ownerID, collectionID uuid.UUID) (*entity.Collection, error) {
	var (
		shared  *entity.Collection
		changed bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		collectionRepo := repoFactory.CollectionRepo()

		collection, err := findOwnedCollection(ctx, collectionRepo, ownerID, collectionID)
		if err != nil {
			return err
		}

		if collection.IsShared() {
			shared = collection

			return nil
		}

		now := srv.now()
		token := srv.newShareToken()
		collection.Share = &entity.ShareInfo{
			Token:    token,
			URL:      srv.qrCode.ShareURL(token),
			SharedAt: now,
		}
		if collection.Visibility != entity.VisibilityPublic {
			collection.Visibility = entity.VisibilityShared
		}
		collection.SyncStatus = nextWriteStatus(collection.SyncStatus)
		collection.UpdatedAt = now

		if err := collectionRepo.UpdateCollection(ctx, collection); err != nil {
			if errors.Is(err, repository.ErrShareTokenConflict) {
				return err
			}

			return toAppError(err, "failed to share collection")
		}

		shared = collection
		changed = true

		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		srv.publish(ctx, shared)
	}

	return shared, nil
}

// GetSharedCollection is the public read of a shared collection. The token
// may also be the full share URL scanned from a QR code.
func (srv *collectionService) GetSharedCollection(ctx context.Context, token string) (*usecase.SharedCollection, error) {
	token = strings.TrimSpace(token)
	if strings.Contains(token, "://") {
		parsed, err := srv.qrCode.ParseShareQR(token)
		if err != nil {
			return nil, domainerrors.ErrShareNotFound.WrapMessage(err.Error())
		}
		token = parsed
	}

	if token == "" {
		return nil, domainerrors.ErrShareNotFound
	}

	collection, err := srv.collectionRepo.FindCollectionByShareToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrCollectionNotFound) {
			return nil, domainerrors.ErrShareNotFound
		}

		return nil, toAppError(err, "failed to find collection by share token")
	}

	locations, err := srv.locationRepo.FindLocationsByCollection(ctx, collection.ID)
	if err != nil {
		return nil, toAppError(err, "failed to find shared locations")
	}

	return &usecase.SharedCollection{
		Collection: collection,
		Locations:  locations,
	}, nil
}

// ShareQRCode returns a PNG QR code of the share link, sharing the collection first if needed
func (srv *collectionService) ShareQRCode(ctx context.Context, ownerID, collectionID uuid.UUID) ([]byte, error) {
	collection, err := srv.ShareCollection(ctx, ownerID, collectionID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateShareQR(collection.Share.Token)
	if err != nil {
		srv.log(ctx).Error("Failed to generate share QR code",
			slog.String("collection_id", collectionID.String()),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrQRCodeGenerationFailed.WrapMessage(err.Error())
	}

	return png, nil
}

// ExportGeoJSON renders the locations of a collection as GeoJSON points
func (srv *collectionService) ExportGeoJSON(ctx context.Context, ownerID, collectionID uuid.UUID) (*geojson.FeatureCollection, error) {
	collection, err := findOwnedCollection(ctx, srv.collectionRepo, ownerID, collectionID)
	if err != nil {
		return nil, err
	}

	locations, err := srv.locationRepo.FindLocationsByCollection(ctx, collection.ID)
	if err != nil {
		return nil, toAppError(err, "failed to find locations by collection")
	}

	fc := geojson.NewFeatureCollection()
	fc.ExtraMembers = geojson.Properties{
		"collection_id": collection.ID.String(),
		"name":          collection.Name,
	}

	for _, location := range locations {
		feature := geojson.NewFeature(location.Coordinate().Point())
		feature.ID = location.ID.String()
		feature.Properties["name"] = location.Name
		feature.Properties["address"] = location.Address
		feature.Properties["is_favorite"] = location.IsFavorite
		if location.Category != "" {
			feature.Properties["category"] = location.Category
		}
		if location.ExternalPlaceID != "" {
			feature.Properties["external_place_id"] = location.ExternalPlaceID
		}
		if len(location.Tags) > 0 {
			feature.Properties["tags"] = location.Tags
		}

		fc.Append(feature)
	}

	return fc, nil
}

func (srv *collectionService) publish(ctx context.Context, collection *entity.Collection) {
	event := newSyncEvent(ctx, entity.SyncEntityCollection, collection.ID, collection.OwnerID, collection.SyncStatus, srv.now())
	publishSyncEvent(ctx, srv.publisher, srv.log(ctx), event)
}
