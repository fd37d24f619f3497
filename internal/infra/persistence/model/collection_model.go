package model

import (
	"time"

	"github.com/google/uuid"
)

// CollectionModel is the GORM-specific struct for the 'collections' table.
type CollectionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID    uuid.UUID `gorm:"type:uuid;not null;index:idx_collections_on_owner"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Icon       string    `gorm:"type:varchar(50);not null;default:''"`
	IsDefault  bool      `gorm:"not null;default:false"`
	Visibility string    `gorm:"type:varchar(20);not null;default:'private'"`
	ShareToken *string   `gorm:"type:varchar(64);uniqueIndex"`
	ShareURL   string    `gorm:"type:text;not null;default:''"`
	SharedAt   *time.Time
	SyncStatus string `gorm:"type:varchar(20);not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CollectionModel) TableName() string {
	return "collections"
}

// All returns every model owned by this service, in dependency order.
func All() []any {
	return []any{&CollectionModel{}, &LocationModel{}}
}
