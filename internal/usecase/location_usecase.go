package usecase

import (
	"context"

	"placebook/internal/domain/entity"

	"github.com/google/uuid"
)

// AddLocationInput represents the input for adding a new location to a collection
type AddLocationInput struct {
	Name            string   `json:"name" validate:"required,max=200"`
	Address         string   `json:"address" validate:"max=500"`
	Latitude        float64  `json:"latitude" validate:"latitude"`
	Longitude       float64  `json:"longitude" validate:"longitude"`
	ExternalPlaceID string   `json:"external_place_id,omitempty" validate:"max=64"`
	Category        string   `json:"category,omitempty" validate:"max=64"`
	Notes           string   `json:"notes,omitempty" validate:"max=2000"`
	Tags            []string `json:"tags,omitempty" validate:"max=20,dive,max=32"`
	ImageURLs       []string `json:"image_urls,omitempty" validate:"max=10,dive,url"`
	IsFavorite      bool     `json:"is_favorite"`
}

// UpdateLocationInput represents the input for updating an existing location.
// Nil fields and slices are left unchanged; an empty slice clears the list.
type UpdateLocationInput struct {
	Name       *string   `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Address    *string   `json:"address,omitempty" validate:"omitempty,max=500"`
	Latitude   *float64  `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude  *float64  `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Category   *string   `json:"category,omitempty" validate:"omitempty,max=64"`
	Notes      *string   `json:"notes,omitempty" validate:"omitempty,max=2000"`
	Tags       []string  `json:"tags,omitempty" validate:"omitempty,max=20,dive,max=32"`
	ImageURLs  []string  `json:"image_urls,omitempty" validate:"omitempty,max=10,dive,url"`
	IsFavorite *bool     `json:"is_favorite,omitempty"`
}

// LocationUsecase defines the interface for saved location management
type LocationUsecase interface {
	ListLocations(ctx context.Context, ownerID, collectionID uuid.UUID) ([]*entity.Location, error)
	GetLocation(ctx context.Context, ownerID, locationID uuid.UUID) (*entity.Location, error)
	AddLocation(ctx context.Context, ownerID, collectionID uuid.UUID, input *AddLocationInput) (*entity.Location, error)

	// SaveResolvedLocation stores a copy of a transient location (map selection,
	// current position, search result) as a new saved location.
	SaveResolvedLocation(ctx context.Context, ownerID, collectionID uuid.UUID, location *entity.Location) (*entity.Location, error)

	UpdateLocation(ctx context.Context, ownerID, locationID uuid.UUID, input *UpdateLocationInput) (*entity.Location, error)
	DeleteLocation(ctx context.Context, ownerID, locationID uuid.UUID) error
}
