package usecase

import (
	"context"

	"placebook/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// CreateCollectionInput represents the input for creating a collection
type CreateCollectionInput struct {
	Name string `json:"name" validate:"required,max=100"`
	Icon string `json:"icon,omitempty" validate:"max=64"`
}

// UpdateCollectionInput represents the input for updating a collection
type UpdateCollectionInput struct {
	Name       *string            `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Icon       *string            `json:"icon,omitempty" validate:"omitempty,max=64"`
	Visibility *entity.Visibility `json:"visibility,omitempty" validate:"omitempty,oneof=private shared public"`
}

// SharedCollection is the public view of a shared collection
type SharedCollection struct {
	Collection *entity.Collection
	Locations  []*entity.Location
}

// CollectionUsecase defines the interface for collection management and sharing
type CollectionUsecase interface {
	ListCollections(ctx context.Context, ownerID uuid.UUID) ([]*entity.Collection, error)
	GetCollection(ctx context.Context, ownerID, collectionID uuid.UUID) (*entity.Collection, error)
	CreateCollection(ctx context.Context, ownerID uuid.UUID, input *CreateCollectionInput) (*entity.Collection, error)
	UpdateCollection(ctx context.Context, ownerID, collectionID uuid.UUID, input *UpdateCollectionInput) (*entity.Collection, error)

	// DeleteCollection removes a collection together with its locations
	DeleteCollection(ctx context.Context, ownerID, collectionID uuid.UUID) error

	// Sharing
	ShareCollection(ctx context.Context, ownerID, collectionID uuid.UUID) (*entity.Collection, error)
	GetSharedCollection(ctx context.Context, token string) (*SharedCollection, error)
	ShareQRCode(ctx context.Context, ownerID, collectionID uuid.UUID) ([]byte, error)

	// ExportGeoJSON renders the collection as a FeatureCollection of points
	ExportGeoJSON(ctx context.Context, ownerID, collectionID uuid.UUID) (*geojson.FeatureCollection, error)
}
