package perfumes

import (
	"time"

	"github.com/TuancoderLo/perfume-api/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BrandSummary is the brand slice embedded in perfume responses.
type BrandSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// AuthorSummary is the member slice embedded in comment responses.
type AuthorSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	PhotoURL string    `json:"photoURL,omitempty"`
}

// CommentDTO is the comment projection returned by the API.
type CommentDTO struct {
	ID        uuid.UUID      `json:"id"`
	PerfumeID uuid.UUID      `json:"perfumeId"`
	Author    *AuthorSummary `json:"author,omitempty"`
	AuthorID  uuid.UUID      `json:"authorId"`
	Rating    int            `json:"rating"`
	Content   string         `json:"content"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// PerfumeDTO is the full perfume projection, comments included.
type PerfumeDTO struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	BrandID       uuid.UUID       `json:"brandId"`
	Brand         *BrandSummary   `json:"brand,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Description   string          `json:"description,omitempty"`
	Volume        int             `json:"volume,omitempty"`
	ImageURL      string          `json:"imageURL,omitempty"`
	Concentration string          `json:"concentration,omitempty"`
	TargetGender  string          `json:"targetGender,omitempty"`
	Category      string          `json:"category,omitempty"`
	ReleaseYear   int             `json:"releaseYear,omitempty"`
	Comments      []CommentDTO    `json:"comments,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// PublicPerfumeDTO is the unauthenticated catalog projection. It omits
// comments and moderation-adjacent fields.
type PublicPerfumeDTO struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Brand         *BrandSummary   `json:"brand,omitempty"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"imageURL,omitempty"`
	Concentration string          `json:"concentration,omitempty"`
	TargetGender  string          `json:"targetGender,omitempty"`
}

// PublicCommentDTO carries a review with its author flattened to a name.
type PublicCommentDTO struct {
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// PublicPerfumeDetailDTO is the formatted unauthenticated detail view. The
// brand reference is flattened to its name and the category falls back to the
// target audience when unset.
type PublicPerfumeDetailDTO struct {
	ID            uuid.UUID          `json:"id"`
	Name          string             `json:"name"`
	Brand         string             `json:"brand"`
	Price         decimal.Decimal    `json:"price"`
	Description   string             `json:"description,omitempty"`
	Volume        int                `json:"volume,omitempty"`
	ImageURL      string             `json:"imageURL,omitempty"`
	Concentration string             `json:"concentration,omitempty"`
	Category      string             `json:"category,omitempty"`
	ReleaseYear   int                `json:"releaseYear,omitempty"`
	Comments      []PublicCommentDTO `json:"comments"`
}

func brandSummary(b *models.Brand) *BrandSummary {
	if b == nil {
		return nil
	}
	return &BrandSummary{ID: b.ID, Name: b.Name}
}

func commentToDTO(c *models.Comment) CommentDTO {
	dto := CommentDTO{
		ID:        c.ID,
		PerfumeID: c.PerfumeID,
		AuthorID:  c.AuthorID,
		Rating:    c.Rating,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Author != nil {
		dto.Author = &AuthorSummary{ID: c.Author.ID, Name: c.Author.Name, PhotoURL: c.Author.PhotoURL}
	}
	return dto
}

// ToDTO converts a perfume row, including whatever associations are loaded.
func ToDTO(p *models.Perfume) PerfumeDTO {
	dto := PerfumeDTO{
		ID:            p.ID,
		Name:          p.Name,
		BrandID:       p.BrandID,
		Brand:         brandSummary(p.Brand),
		Price:         p.Price,
		Description:   p.Description,
		Volume:        p.Volume,
		ImageURL:      p.ImageURL,
		Concentration: p.Concentration,
		TargetGender:  p.TargetGender,
		Category:      p.Category,
		ReleaseYear:   p.ReleaseYear,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	for i := range p.Comments {
		dto.Comments = append(dto.Comments, commentToDTO(&p.Comments[i]))
	}
	return dto
}

func ToDTOs(rows []models.Perfume) []PerfumeDTO {
	out := make([]PerfumeDTO, 0, len(rows))
	for i := range rows {
		out = append(out, ToDTO(&rows[i]))
	}
	return out
}

// ToPublicDTO converts a perfume row into the unauthenticated projection.
func ToPublicDTO(p *models.Perfume) PublicPerfumeDTO {
	return PublicPerfumeDTO{
		ID:            p.ID,
		Name:          p.Name,
		Brand:         brandSummary(p.Brand),
		Price:         p.Price,
		ImageURL:      p.ImageURL,
		Concentration: p.Concentration,
		TargetGender:  p.TargetGender,
	}
}

func ToPublicDTOs(rows []models.Perfume) []PublicPerfumeDTO {
	out := make([]PublicPerfumeDTO, 0, len(rows))
	for i := range rows {
		out = append(out, ToPublicDTO(&rows[i]))
	}
	return out
}

const unknownBrandName = "Unknown Brand"

// ToPublicDetailDTO flattens a perfume row for the unauthenticated detail
// view. Comments keep only the author's display name.
func ToPublicDetailDTO(p *models.Perfume) PublicPerfumeDetailDTO {
	brandName := unknownBrandName
	if p.Brand != nil && p.Brand.Name != "" {
		brandName = p.Brand.Name
	}
	category := p.Category
	if category == "" {
		category = p.TargetGender
	}

	dto := PublicPerfumeDetailDTO{
		ID:            p.ID,
		Name:          p.Name,
		Brand:         brandName,
		Price:         p.Price,
		Description:   p.Description,
		Volume:        p.Volume,
		ImageURL:      p.ImageURL,
		Concentration: p.Concentration,
		Category:      category,
		ReleaseYear:   p.ReleaseYear,
		Comments:      []PublicCommentDTO{},
	}
	for i := range p.Comments {
		c := &p.Comments[i]
		entry := PublicCommentDTO{Rating: c.Rating, Content: c.Content, CreatedAt: c.CreatedAt}
		if c.Author != nil {
			entry.Author = c.Author.Name
		}
		dto.Comments = append(dto.Comments, entry)
	}
	return dto
}

// ListFilter narrows perfume listings. Brand takes a uuid or a brand name and
// is resolved by the service before it reaches the repository.
type ListFilter struct {
	Name     string
	Brand    string
	BrandID  uuid.UUID
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Limit    int
	Offset   int
}

// CreatePerfumeRequest carries the fields for a new perfume.
type CreatePerfumeRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	BrandID       uuid.UUID       `json:"brandId" validate:"required"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	Description   string          `json:"description" validate:"omitempty,max=5000"`
	Volume        int             `json:"volume" validate:"omitempty,gt=0"`
	ImageURL      string          `json:"imageURL" validate:"omitempty,url"`
	Concentration string          `json:"concentration" validate:"omitempty,max=60"`
	TargetGender  string          `json:"targetGender" validate:"omitempty,oneof=male female unisex"`
	Category      string          `json:"category" validate:"omitempty,max=100"`
	ReleaseYear   int             `json:"releaseYear" validate:"omitempty,gte=1700,lte=2100"`
}

// UpdatePerfumeRequest carries a partial perfume update.
type UpdatePerfumeRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	BrandID       *uuid.UUID       `json:"brandId"`
	Price         *decimal.Decimal `json:"price"`
	Description   *string          `json:"description" validate:"omitempty,max=5000"`
	Volume        *int             `json:"volume" validate:"omitempty,gt=0"`
	ImageURL      *string          `json:"imageURL" validate:"omitempty,url"`
	Concentration *string          `json:"concentration" validate:"omitempty,max=60"`
	TargetGender  *string          `json:"targetGender" validate:"omitempty,oneof=male female unisex"`
	Category      *string          `json:"category" validate:"omitempty,max=100"`
	ReleaseYear   *int             `json:"releaseYear" validate:"omitempty,gte=1700,lte=2100"`
}

// AddCommentRequest carries a new review.
type AddCommentRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// EditCommentRequest carries a partial review edit.
type EditCommentRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Content *string `json:"content" validate:"omitempty,min=1,max=2000"`
}
