package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel is the GORM-specific struct for the 'locations' table.
type LocationModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CollectionID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_locations_on_collection"`
	ExternalPlaceID string     `gorm:"type:varchar(255);not null;default:''"`
	Name            string     `gorm:"type:varchar(255);not null"`
	CanonicalName   string     `gorm:"type:varchar(255);not null;index:idx_locations_on_collection"`
	Address         string     `gorm:"type:text;not null;default:''"`
	Latitude        float64    `gorm:"type:decimal(10,8);not null"`
	Longitude       float64    `gorm:"type:decimal(11,8);not null"`
	Category        string     `gorm:"type:varchar(100);not null;default:''"`
	Notes           string     `gorm:"type:text;not null;default:''"`
	Tags            []string   `gorm:"type:text;serializer:json"`
	ImageURLs       []string   `gorm:"type:text;serializer:json"`
	IsFavorite      bool       `gorm:"not null;default:false"`
	Visibility      string     `gorm:"type:varchar(20);not null;default:'private'"`
	ShareToken      *string    `gorm:"type:varchar(64);uniqueIndex"`
	ShareURL        string     `gorm:"type:text;not null;default:''"`
	SharedAt        *time.Time
	SyncStatus      string `gorm:"type:varchar(20);not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
