package service

import (
	"context"

	"placebook/internal/domain/entity"
)

// Placemark is a single upstream result of a reverse geocode or a place search.
type Placemark struct {
	ExternalID         string
	Name               string
	Coordinate         entity.Coordinate
	SubThoroughfare    string // house number
	Thoroughfare       string // street
	Locality           string // city
	AdministrativeArea string // state or region
	PostalCode         string
	Country            string
}

// Completion is an upstream autocomplete candidate. Handle is opaque and is
// only meaningful to the provider that produced it.
type Completion struct {
	Title    string
	Subtitle string
	Handle   string
}

// Region biases a place search around a center point.
type Region struct {
	Center       entity.Coordinate
	RadiusMeters float64
}

// PlaceProvider is the upstream geocoding, search and autocomplete service.
type PlaceProvider interface {
	// ReverseGeocode returns the placemarks known at a coordinate, best first.
	ReverseGeocode(ctx context.Context, coord entity.Coordinate) ([]Placemark, error)

	// Search runs a free-text query, optionally biased toward region.
	Search(ctx context.Context, query string, region *Region, limit int) ([]Placemark, error)

	// Complete returns autocomplete candidates for a partial query.
	Complete(ctx context.Context, fragment string, limit int) ([]Completion, error)

	// ResolveCompletion turns a completion handle into a full placemark.
	ResolveCompletion(ctx context.Context, handle string) (*Placemark, error)
}

// Geocoder resolves a coordinate into a name and an address.
type Geocoder interface {
	// ReverseGeocode returns the metadata at coord or a GeocodingFailedError.
	ReverseGeocode(ctx context.Context, coord entity.Coordinate) (*entity.LocationMetadata, error)
}

// PlaceSearcher looks for a named place near a point.
type PlaceSearcher interface {
	// SearchNearby returns the metadata of the best match close to the region
	// center. Failures and distant matches report false and are never errors.
	SearchNearby(ctx context.Context, query string, region Region) (*entity.LocationMetadata, bool)
}

// SuggestionProvider serves debounced autocomplete suggestions.
type SuggestionProvider interface {
	// Suggest returns suggestion-only locations for query within the given session.
	// A newer call on the same session resolves the older one with an empty list.
	Suggest(ctx context.Context, sessionKey, query string) []entity.Location

	// Resolve turns a suggestion into a search_result location with coordinates.
	Resolve(ctx context.Context, suggestion entity.Location) (*entity.Location, bool)
}
