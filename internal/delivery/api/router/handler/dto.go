package handler

import (
	"time"

	"placebook/internal/domain/entity"
)

// LocationResponse is the wire form of a saved or transient location
type LocationResponse struct {
	ID              string    `json:"id"`
	CollectionID    string    `json:"collection_id,omitempty"`
	ExternalPlaceID string    `json:"external_place_id,omitempty"`
	Name            string    `json:"name"`
	Address         string    `json:"address"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	Category        string    `json:"category,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Tags            []string  `json:"tags,omitempty"`
	ImageURLs       []string  `json:"image_urls,omitempty"`
	IsFavorite      bool      `json:"is_favorite"`
	Visibility      string    `json:"visibility"`
	Origin          string    `json:"origin"`
	SyncStatus      string    `json:"sync_status,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ShareResponse describes an issued share link
type ShareResponse struct {
	Token    string    `json:"token"`
	URL      string    `json:"url"`
	SharedAt time.Time `json:"shared_at"`
}

// CollectionResponse is the wire form of a collection
type CollectionResponse struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Icon       string         `json:"icon,omitempty"`
	IsDefault  bool           `json:"is_default"`
	Visibility string         `json:"visibility"`
	Share      *ShareResponse `json:"share,omitempty"`
	SyncStatus string         `json:"sync_status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// SharedCollectionResponse is the public view of a shared collection
type SharedCollectionResponse struct {
	Collection *CollectionResponse `json:"collection"`
	Locations  []*LocationResponse `json:"locations"`
}

func toLocationResponse(l *entity.Location) *LocationResponse {
	if l == nil {
		return nil
	}

	resp := &LocationResponse{
		ID:              l.ID.String(),
		ExternalPlaceID: l.ExternalPlaceID,
		Name:            l.Name,
		Address:         l.Address,
		Latitude:        l.Latitude,
		Longitude:       l.Longitude,
		Category:        l.Category,
		Notes:           l.Notes,
		Tags:            l.Tags,
		ImageURLs:       l.ImageURLs,
		IsFavorite:      l.IsFavorite,
		Visibility:      l.Visibility.String(),
		Origin:          l.Origin.String(),
		SyncStatus:      l.SyncStatus.String(),
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
	if !l.IsTransient() {
		resp.CollectionID = l.CollectionID.String()
	}

	return resp
}

func toLocationResponses(locations []*entity.Location) []*LocationResponse {
	out := make([]*LocationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, toLocationResponse(l))
	}

	return out
}

func toCollectionResponse(c *entity.Collection) *CollectionResponse {
	if c == nil {
		return nil
	}

	resp := &CollectionResponse{
		ID:         c.ID.String(),
		Name:       c.Name,
		Icon:       c.Icon,
		IsDefault:  c.IsDefault,
		Visibility: c.Visibility.String(),
		SyncStatus: c.SyncStatus.String(),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
	if c.Share != nil {
		resp.Share = &ShareResponse{
			Token:    c.Share.Token,
			URL:      c.Share.URL,
			SharedAt: c.Share.SharedAt,
		}
	}

	return resp
}
