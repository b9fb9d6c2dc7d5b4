package brands

import (
	"context"

	"github.com/TuancoderLo/perfume-api/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes brand persistence operations.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, brand *models.Brand) (*models.Brand, error) {
	if brand.ID == uuid.Nil {
		brand.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(brand).Error; err != nil {
		return nil, err
	}
	return brand, nil
}

// FindByID loads a brand regardless of its deletion state.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.WithContext(ctx).First(&brand, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

// FindActiveByID loads a brand only when neither deletion marker is set.
func (r *Repository) FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ? AND deleted_at IS NULL", id, false).
		First(&brand).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// FindDeletedByID loads a brand when either deletion marker is set, so rows
// with inconsistent markers remain reachable for restore.
func (r *Repository) FindDeletedByID(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.WithContext(ctx).
		Where("id = ? AND (is_deleted = ? OR deleted_at IS NOT NULL)", id, true).
		First(&brand).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// FindByName matches the brand name case-insensitively in any state.
func (r *Repository) FindByName(ctx context.Context, name string) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&brand).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *Repository) Save(ctx context.Context, brand *models.Brand) error {
	return r.db.WithContext(ctx).Save(brand).Error
}

// HardDelete removes the brand row entirely.
func (r *Repository) HardDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Brand{}, "id = ?", id).Error
}

// List returns brands ordered by name. Deleted brands are excluded unless
// the filter opts in.
func (r *Repository) List(ctx context.Context, filter ListFilter) ([]models.Brand, error) {
	query := r.db.WithContext(ctx).Model(&models.Brand{}).Order("name ASC")
	if !filter.IncludeDeleted {
		query = query.Where("is_deleted = ? AND deleted_at IS NULL", false)
	}
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Name+"%")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var brands []models.Brand
	if err := query.Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}
