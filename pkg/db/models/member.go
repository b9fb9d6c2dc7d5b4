package models

import (
	"time"

	"github.com/google/uuid"
)

// Member is a registered account. Admin flags and block state live on the
// row itself; access tokens only carry a snapshot that guards re-verify.
type Member struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	YearOfBirth  int       `gorm:"not null"`
	Gender       bool      `gorm:"not null;default:true"`
	IsAdmin      bool      `gorm:"not null;default:false"`

	GoogleID *string `gorm:"uniqueIndex"`
	PhotoURL string

	IsBlocked   bool `gorm:"not null;default:false"`
	BlockedAt   *time.Time
	BlockedBy   *uuid.UUID `gorm:"type:uuid"`
	BlockReason string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Member) TableName() string { return "members" }
