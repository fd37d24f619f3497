// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"placebook/internal/domain/entity"
	"placebook/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for location persistence.
var (
	// ErrLocationNotFound is returned when a location is not found or is pending deletion.
	ErrLocationNotFound = errors.New("location not found")
	// ErrTransientLocation is returned when a non-saved location reaches storage.
	ErrTransientLocation = errors.New("transient location cannot be persisted")
)

// LocationRepository defines the interface for location-related database operations.
// Rows in pending_delete state are invisible to every finder.
type LocationRepository interface {
	// CreateLocation persists a new saved location.
	// Returns ErrTransientLocation if the location origin is not saved.
	CreateLocation(ctx context.Context, location *entity.Location) error

	// FindLocationByID retrieves a location by its unique ID.
	FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// FindLocationsByCollection retrieves the locations of a collection ordered by canonical name.
	FindLocationsByCollection(ctx context.Context, collectionID uuid.UUID) ([]*entity.Location, error)

	// CountLocationsByCollection returns the number of visible locations in a collection.
	CountLocationsByCollection(ctx context.Context, collectionID uuid.UUID) (int64, error)

	// UpdateLocation updates an existing location record.
	UpdateLocation(ctx context.Context, location *entity.Location) error

	// MarkLocationsDeletedByCollection moves every location of a collection to pending_delete.
	MarkLocationsDeletedByCollection(ctx context.Context, collectionID uuid.UUID) error

	// CompareAndSetSyncStatus sets the sync status to next only while it still equals expected.
	// It reports whether a row was changed.
	CompareAndSetSyncStatus(ctx context.Context, id uuid.UUID, expected, next entity.SyncStatus) (bool, error)

	// DeleteLocation removes a location row permanently.
	DeleteLocation(ctx context.Context, id uuid.UUID) error

	// DeleteLocationsByCollection removes every location row of a collection permanently.
	DeleteLocationsByCollection(ctx context.Context, collectionID uuid.UUID) error
}
