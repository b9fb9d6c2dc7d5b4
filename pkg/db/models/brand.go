package models

import (
	"time"

	"github.com/google/uuid"
)

// Brand is a perfume house. Deletion is two-phase: brands with perfumes are
// soft-deleted, empty brands are removed outright.
type Brand struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"uniqueIndex;not null"`

	IsDeleted bool `gorm:"not null;default:false"`
	DeletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Brand) TableName() string { return "brands" }

// Deleted reports whether the brand is in the deleted state. Either marker
// alone counts so rows with inconsistent markers are still restorable.
func (b Brand) Deleted() bool {
	return b.IsDeleted || b.DeletedAt != nil
}
