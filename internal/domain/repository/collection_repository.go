package repository

import (
	"context"

	"placebook/internal/domain/entity"
	"placebook/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for collection persistence.
var (
	// ErrCollectionNotFound is returned when a collection is not found or is pending deletion.
	ErrCollectionNotFound = errors.New("collection not found")
	// ErrShareTokenConflict is returned when a share token is already taken.
	ErrShareTokenConflict = errors.New("share token already in use")
)

// CollectionRepository defines the interface for collection-related database operations.
type CollectionRepository interface {
	// CreateCollection persists a new collection.
	CreateCollection(ctx context.Context, collection *entity.Collection) error

	// FindCollectionByID retrieves a collection by its unique ID.
	FindCollectionByID(ctx context.Context, id uuid.UUID) (*entity.Collection, error)

	// FindCollectionByShareToken retrieves a shared collection by its share token.
	FindCollectionByShareToken(ctx context.Context, token string) (*entity.Collection, error)

	// FindCollectionsByOwner retrieves all collections of an owner, default collection first.
	FindCollectionsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Collection, error)

	// CountCollectionsByOwner returns the number of visible collections of an owner.
	CountCollectionsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// UpdateCollection updates an existing collection record.
	UpdateCollection(ctx context.Context, collection *entity.Collection) error

	// CompareAndSetSyncStatus sets the sync status to next only while it still equals expected.
	CompareAndSetSyncStatus(ctx context.Context, id uuid.UUID, expected, next entity.SyncStatus) (bool, error)

	// DeleteCollection removes a collection row permanently.
	DeleteCollection(ctx context.Context, id uuid.UUID) error
}
