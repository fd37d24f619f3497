package usecase

import (
	"context"

	"placebook/internal/domain/entity"
)

// PlaceResolutionUsecase turns what the user pointed at or typed into transient locations
type PlaceResolutionUsecase interface {
	// ResolveMapSelection resolves a tapped coordinate, optionally hinted by the
	// name of the map feature under the finger. The coordinate is never moved.
	ResolveMapSelection(ctx context.Context, coord entity.Coordinate, hintName string) (*entity.Location, error)

	// ResolveCurrentLocation resolves the device position.
	ResolveCurrentLocation(ctx context.Context, coord entity.Coordinate) (*entity.Location, error)

	// GetSuggestions returns debounced autocomplete suggestions for the session.
	GetSuggestions(ctx context.Context, sessionKey, query string) []entity.Location

	// ResolveSuggestion turns a suggestion into a search result with coordinates.
	ResolveSuggestion(ctx context.Context, suggestion entity.Location) (*entity.Location, error)
}
