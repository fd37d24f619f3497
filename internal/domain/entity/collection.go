package entity

import (
	"time"

	"github.com/google/uuid"
)

// Collection is a user-defined group of saved locations.
type Collection struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Name       string
	Icon       string
	IsDefault  bool // the owner's first collection; it cannot be deleted
	Visibility Visibility
	Share      *ShareInfo
	SyncStatus SyncStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsOwnedBy reports whether the collection belongs to ownerID.
func (c *Collection) IsOwnedBy(ownerID uuid.UUID) bool {
	return c != nil && c.OwnerID == ownerID
}

// IsShared reports whether the collection has an active share link.
func (c *Collection) IsShared() bool {
	return c != nil && c.Share != nil && c.Share.Token != "" && c.Visibility.IsReadableByLink()
}
