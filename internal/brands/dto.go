package brands

import (
	"time"

	"github.com/TuancoderLo/perfume-api/pkg/db/models"
	"github.com/google/uuid"
)

// BrandDTO is the brand projection returned by the API.
type BrandDTO struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	IsDeleted bool       `json:"isDeleted"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func ToDTO(b *models.Brand) BrandDTO {
	return BrandDTO{
		ID:        b.ID,
		Name:      b.Name,
		IsDeleted: b.IsDeleted,
		DeletedAt: b.DeletedAt,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func ToDTOs(rows []models.Brand) []BrandDTO {
	out := make([]BrandDTO, 0, len(rows))
	for i := range rows {
		out = append(out, ToDTO(&rows[i]))
	}
	return out
}

// ListFilter narrows brand listings.
type ListFilter struct {
	Name           string
	IncludeDeleted bool
	Limit          int
	Offset         int
}

// CreateBrandRequest carries the fields for a new brand.
type CreateBrandRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// UpdateBrandRequest carries a partial brand update.
type UpdateBrandRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=120"`
}

// DeleteResult reports which deletion path was taken. ProductCount is the
// live perfume count measured at delete time, not a stored column.
type DeleteResult struct {
	SoftDeleted  bool `json:"softDeleted"`
	ProductCount int  `json:"productCount"`
}
