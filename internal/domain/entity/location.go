package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// UnknownLocationName is the display name of a location nothing could be resolved for.
const UnknownLocationName = "Unknown Location"

// LocationOrigin tells where a Location came from. Every origin except
// OriginSaved marks a transient location that must not be stored as-is.
type LocationOrigin string

const (
	OriginSaved        LocationOrigin = "saved"
	OriginMyLocation   LocationOrigin = "my_location"
	OriginSearchResult LocationOrigin = "search_result"
	OriginMapSelection LocationOrigin = "map_selection"
	OriginSuggestion   LocationOrigin = "suggestion"
)

// IsValid checks if the origin is one of the known kinds.
func (o LocationOrigin) IsValid() bool {
	switch o {
	case OriginSaved, OriginMyLocation, OriginSearchResult, OriginMapSelection, OriginSuggestion:
		return true
	default:
		return false
	}
}

// IsTransient reports whether a location of this origin is a UI-only result.
func (o LocationOrigin) IsTransient() bool {
	return o != OriginSaved
}

// String returns the string representation of the origin.
func (o LocationOrigin) String() string {
	return string(o)
}

// Location is a named geographic point, either saved in a collection or
// produced transiently by resolution, search or autocomplete.
type Location struct {
	ID              uuid.UUID
	CollectionID    uuid.UUID // uuid.Nil for transient locations
	ExternalPlaceID string    // provider place identifier, empty when unknown
	Name            string
	CanonicalName   string // folded Name used for duplicate checks and sorting
	Address         string
	Latitude        float64 // eight decimal places
	Longitude       float64 // eight decimal places
	Category        string
	Notes           string
	Tags            []string
	ImageURLs       []string
	IsFavorite      bool
	Visibility      Visibility
	Share           *ShareInfo
	Origin          LocationOrigin
	SyncStatus      SyncStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// LocationParams holds the inputs of NewLocation.
type LocationParams struct {
	ID              uuid.UUID // generated when uuid.Nil
	CollectionID    uuid.UUID
	ExternalPlaceID string
	Name            string
	Address         string
	Coordinate      Coordinate
	Category        string
	Notes           string
	Tags            []string
	ImageURLs       []string
	IsFavorite      bool
	Visibility      Visibility
	Origin          LocationOrigin
	SyncStatus      SyncStatus
	Now             time.Time // time.Now when zero
}

// NewLocation builds a Location. Coordinates are rounded to eight decimal
// places here and nowhere else.
func NewLocation(params LocationParams) *Location {
	id := params.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	origin := params.Origin
	if origin == "" {
		origin = OriginSaved
	}

	visibility := params.Visibility
	if visibility == "" {
		visibility = VisibilityPrivate
	}

	now := params.Now
	if now.IsZero() {
		now = time.Now()
	}

	coord := params.Coordinate.Rounded()

	return &Location{
		ID:              id,
		CollectionID:    params.CollectionID,
		ExternalPlaceID: params.ExternalPlaceID,
		Name:            params.Name,
		CanonicalName:   CanonicalName(params.Name),
		Address:         params.Address,
		Latitude:        coord.Latitude,
		Longitude:       coord.Longitude,
		Category:        params.Category,
		Notes:           params.Notes,
		Tags:            params.Tags,
		ImageURLs:       params.ImageURLs,
		IsFavorite:      params.IsFavorite,
		Visibility:      visibility,
		Origin:          origin,
		SyncStatus:      params.SyncStatus,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Coordinate returns the stored coordinate of the location.
func (l *Location) Coordinate() Coordinate {
	return Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
}

// IsTransient reports whether the location is a UI-only result.
func (l *Location) IsTransient() bool {
	return l.Origin.IsTransient()
}

// Rename changes the display name and keeps CanonicalName in step.
func (l *Location) Rename(name string) {
	l.Name = name
	l.CanonicalName = CanonicalName(name)
}

// MoveTo sets a new coordinate, rounded to eight decimal places.
func (l *Location) MoveTo(coord Coordinate) {
	rounded := coord.Rounded()
	l.Latitude = rounded.Latitude
	l.Longitude = rounded.Longitude
}

// ToSaved copies a transient location into a new saved location in the given
// collection. The copy gets a fresh ID; the source is left untouched.
func (l *Location) ToSaved(collectionID uuid.UUID, now time.Time) *Location {
	saved := NewLocation(LocationParams{
		CollectionID:    collectionID,
		ExternalPlaceID: l.ExternalPlaceID,
		Name:            l.Name,
		Address:         l.Address,
		Coordinate:      l.Coordinate(),
		Category:        l.Category,
		Notes:           l.Notes,
		Tags:            append([]string(nil), l.Tags...),
		ImageURLs:       append([]string(nil), l.ImageURLs...),
		IsFavorite:      l.IsFavorite,
		Visibility:      l.Visibility,
		Origin:          OriginSaved,
		SyncStatus:      SyncStatusPendingCreate,
		Now:             now,
	})

	return saved
}

// LocationMetadata is the enrichment produced by search or reverse geocoding.
// It carries no coordinate: enrichment never moves a location.
type LocationMetadata struct {
	Name            string
	Address         string
	ExternalPlaceID string
}

// HasName reports whether the metadata carries a usable name.
func (m *LocationMetadata) HasName() bool {
	return m != nil && strings.TrimSpace(m.Name) != ""
}

// CanonicalName returns the NFC-normalised, case-folded form of name with
// runs of whitespace collapsed to a single space.
func CanonicalName(name string) string {
	normalized := norm.NFC.String(name)
	folded := cases.Fold().String(normalized)

	return strings.Join(strings.Fields(folded), " ")
}
