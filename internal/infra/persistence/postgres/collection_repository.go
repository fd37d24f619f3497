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

// collectionRepository implements the domain.CollectionRepository interface.
type collectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository is the constructor for collectionRepository.
func NewCollectionRepository(db *gorm.DB) repository.CollectionRepository {
	return &collectionRepository{db: db}
}

// CreateCollection persists a new collection.
func (repo *collectionRepository) CreateCollection(ctx context.Context, collection *entity.Collection) error {
	collectionM := fromCollectionDomain(collection)

	if err := repo.db.WithContext(ctx).Create(collectionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrShareTokenConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create collection")
	}

	collection.CreatedAt = collectionM.CreatedAt
	collection.UpdatedAt = collectionM.UpdatedAt

	return nil
}

// FindCollectionByID retrieves a collection by its unique ID.
func (repo *collectionRepository) FindCollectionByID(ctx context.Context, id uuid.UUID) (*entity.Collection, error) {
	var collectionM model.CollectionModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Where(visibleClause, entity.SyncStatusPendingDelete.String()).
		First(&collectionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCollectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find collection by ID")
	}

	return toCollectionDomain(&collectionM), nil
}

// FindCollectionByShareToken retrieves a shared collection by its share token.
func (repo *collectionRepository) FindCollectionByShareToken(ctx context.Context, token string) (*entity.Collection, error) {
	var collectionM model.CollectionModel

	err := repo.db.WithContext(ctx).
		Where("share_token = ?", token).
		Where("visibility IN ?", []string{entity.VisibilityShared.String(), entity.VisibilityPublic.String()}).
		Where(visibleClause, entity.SyncStatusPendingDelete.String()).
		First(&collectionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCollectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find collection by share token")
	}

	return toCollectionDomain(&collectionM), nil
}

// FindCollectionsByOwner retrieves all collections of an owner, default collection first.
func (repo *collectionRepository) FindCollectionsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Collection, error) {
	var collectionModels []*model.CollectionModel

	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Where(visibleClause, entity.SyncStatusPendingDelete.String()).
		Order("is_default DESC").
		Order("created_at ASC").
		Find(&collectionModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find collections by owner")
	}

	collections := make([]*entity.Collection, 0, len(collectionModels))
	for _, collectionM := range collectionModels {
		collections = append(collections, toCollectionDomain(collectionM))
	}

	return collections, nil
}

// CountCollectionsByOwner returns the number of visible collections of an owner.
func (repo *collectionRepository) CountCollectionsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.CollectionModel{}).
		Where("owner_id = ?", ownerID).
		Where(visibleClause, entity.SyncStatusPendingDelete.String()).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count collections by owner")
	}

	return count, nil
}

// UpdateCollection updates an existing collection record.
func (repo *collectionRepository) UpdateCollection(ctx context.Context, collection *entity.Collection) error {
	collection.UpdatedAt = time.Now()
	collectionM := fromCollectionDomain(collection)

	result := repo.db.WithContext(ctx).
		Model(&model.CollectionModel{}).
		Where("id = ?", collection.ID).
		Where(visibleClause, entity.SyncStatusPendingDelete.String()).
		Select("*").
		Updates(collectionM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrShareTokenConflict
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update collection")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCollectionNotFound
	}

	return nil
}

// CompareAndSetSyncStatus sets the sync status to next only while it still equals expected.
func (repo *collectionRepository) CompareAndSetSyncStatus(ctx context.Context, id uuid.UUID, expected, next entity.SyncStatus) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CollectionModel{}).
		Where("id = ? AND sync_status = ?", id, expected.String()).
		Update("sync_status", next.String())
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to update collection sync status")
	}

	return result.RowsAffected > 0, nil
}

// DeleteCollection removes a collection row permanently.
func (repo *collectionRepository) DeleteCollection(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CollectionModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete collection")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCollectionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCollectionDomain converts a GORM CollectionModel to a domain Collection entity.
func toCollectionDomain(data *model.CollectionModel) *entity.Collection {
	if data == nil {
		return nil
	}

	return &entity.Collection{
		ID:         data.ID,
		OwnerID:    data.OwnerID,
		Name:       data.Name,
		Icon:       data.Icon,
		IsDefault:  data.IsDefault,
		Visibility: entity.Visibility(data.Visibility),
		Share:      toShareDomain(data.ShareToken, data.ShareURL, data.SharedAt),
		SyncStatus: entity.SyncStatus(data.SyncStatus),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromCollectionDomain converts a domain Collection entity to a GORM CollectionModel.
func fromCollectionDomain(data *entity.Collection) *model.CollectionModel {
	if data == nil {
		return nil
	}

	shareToken, shareURL, sharedAt := fromShareDomain(data.Share)

	return &model.CollectionModel{
		ID:         data.ID,
		OwnerID:    data.OwnerID,
		Name:       data.Name,
		Icon:       data.Icon,
		IsDefault:  data.IsDefault,
		Visibility: data.Visibility.String(),
		ShareToken: shareToken,
		ShareURL:   shareURL,
		SharedAt:   sharedAt,
		SyncStatus: data.SyncStatus.String(),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
