package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Perfume struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null;index"`
	BrandID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Brand       *Brand    `gorm:"foreignKey:BrandID"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Description string
	Volume      int
	ImageURL    string

	Concentration string
	TargetGender  string
	Category      string
	ReleaseYear   int

	Comments []Comment `gorm:"foreignKey:PerfumeID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Perfume) TableName() string { return "perfumes" }
