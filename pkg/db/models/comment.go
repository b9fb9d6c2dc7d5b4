package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a member's review of a perfume. Each member may hold at most
// one comment per perfume.
type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PerfumeID uuid.UUID `gorm:"type:uuid;not null;index:idx_comments_perfume_author,unique"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index:idx_comments_perfume_author,unique"`
	Author    *Member   `gorm:"foreignKey:AuthorID"`
	Rating    int       `gorm:"not null"`
	Content   string    `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Comment) TableName() string { return "comments" }
