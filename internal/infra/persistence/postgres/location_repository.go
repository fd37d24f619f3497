// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"placebook/internal/domain/entity"
	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/domain/repository"
	"placebook/internal/errors"
	"placebook/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// visibleClause hides rows waiting for hard deletion.
const visibleClause = "sync_status <> ?"

// locationRepository implements the domain.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// CreateLocation persists a new saved location.
func (repo *locationRepository) CreateLocation(ctx context.Context, location *entity.Location) error {
	if location.IsTransient() {
		return repository.ErrTransientLocation
	}

	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCollectionNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindLocationByID retrieves a location by its unique ID.
func (repo *locationRepository) FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Where(visibleClause, entity.SyncStatusPendingDelete.String()).
		First(&locationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	return toLocationDomain(&locationM), nil
}

// FindLocationsByCollection retrieves the visible locations of a collection.
func (repo *locationRepository) FindLocationsByCollection(ctx context.Context, collectionID uuid.UUID) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel

	err := repo.db.WithContext(ctx).
		Where("collection_id = ?", collectionID).
		Where(visibleClause, entity.SyncStatusPendingDelete.String()).
		Order("canonical_name ASC").
		Order("created_at ASC").
		Find(&locationModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find locations by collection")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// CountLocationsByCollection returns the number of visible locations in a collection.
func (repo *locationRepository) CountLocationsByCollection(ctx context.Context, collectionID uuid.UUID) (int64, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("collection_id = ?", collectionID).
		Where(visibleClause, entity.SyncStatusPendingDelete.String()).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count locations by collection")
	}

	return count, nil
}

// UpdateLocation updates an existing location record.
func (repo *locationRepository) UpdateLocation(ctx context.Context, location *entity.Location) error {
	if location.IsTransient() {
		return repository.ErrTransientLocation
	}

	location.UpdatedAt = time.Now()
	locationM := fromLocationDomain(location)

	result := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("id = ?", location.ID).
		Where(visibleClause, entity.SyncStatusPendingDelete.String()).
		Select("*").
		Updates(locationM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// MarkLocationsDeletedByCollection moves every location of a collection to pending_delete.
func (repo *locationRepository) MarkLocationsDeletedByCollection(ctx context.Context, collectionID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("collection_id = ?", collectionID).
		Updates(map[string]any{
			"sync_status": entity.SyncStatusPendingDelete.String(),
			"updated_at":  time.Now(),
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark locations deleted")
	}

	return nil
}

// CompareAndSetSyncStatus sets the sync status to next only while it still equals expected.
func (repo *locationRepository) CompareAndSetSyncStatus(ctx context.Context, id uuid.UUID, expected, next entity.SyncStatus) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("id = ? AND sync_status = ?", id, expected.String()).
		Update("sync_status", next.String())
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to update location sync status")
	}

	return result.RowsAffected > 0, nil
}

// DeleteLocation removes a location row permanently.
func (repo *locationRepository) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LocationModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete location")
	}

	// If no rows were affected, it means the location was not found.
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// DeleteLocationsByCollection removes every location row of a collection permanently.
func (repo *locationRepository) DeleteLocationsByCollection(ctx context.Context, collectionID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("collection_id = ?", collectionID).
		Delete(&model.LocationModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete locations by collection")
	}

	return nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM LocationModel to a domain Location entity.
// Stored rows are always saved locations.
func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:              data.ID,
		CollectionID:    data.CollectionID,
		ExternalPlaceID: data.ExternalPlaceID,
		Name:            data.Name,
		CanonicalName:   data.CanonicalName,
		Address:         data.Address,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		Category:        data.Category,
		Notes:           data.Notes,
		Tags:            data.Tags,
		ImageURLs:       data.ImageURLs,
		IsFavorite:      data.IsFavorite,
		Visibility:      entity.Visibility(data.Visibility),
		Share:           toShareDomain(data.ShareToken, data.ShareURL, data.SharedAt),
		Origin:          entity.OriginSaved,
		SyncStatus:      entity.SyncStatus(data.SyncStatus),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromLocationDomain converts a domain Location entity to a GORM LocationModel.
func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	shareToken, shareURL, sharedAt := fromShareDomain(data.Share)

	return &model.LocationModel{
		ID:              data.ID,
		CollectionID:    data.CollectionID,
		ExternalPlaceID: data.ExternalPlaceID,
		Name:            data.Name,
		CanonicalName:   data.CanonicalName,
		Address:         data.Address,
		Latitude:        entity.RoundCoordinateComponent(data.Latitude),
		Longitude:       entity.RoundCoordinateComponent(data.Longitude),
		Category:        data.Category,
		Notes:           data.Notes,
		Tags:            data.Tags,
		ImageURLs:       data.ImageURLs,
		IsFavorite:      data.IsFavorite,
		Visibility:      data.Visibility.String(),
		ShareToken:      shareToken,
		ShareURL:        shareURL,
		SharedAt:        sharedAt,
		SyncStatus:      data.SyncStatus.String(),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toShareDomain(token *string, url string, sharedAt *time.Time) *entity.ShareInfo {
	if token == nil || *token == "" {
		return nil
	}

	share := &entity.ShareInfo{Token: *token, URL: url}
	if sharedAt != nil {
		share.SharedAt = *sharedAt
	}

	return share
}

func fromShareDomain(share *entity.ShareInfo) (token *string, url string, sharedAt *time.Time) {
	if share == nil || share.Token == "" {
		return nil, "", nil
	}

	t := share.Token
	at := share.SharedAt

	return &t, share.URL, &at
}
