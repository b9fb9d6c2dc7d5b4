package perfumes

import (
	"context"

	"github.com/TuancoderLo/perfume-api/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes perfume and comment persistence operations.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the transaction handle.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

func (r *Repository) Create(ctx context.Context, perfume *models.Perfume) (*models.Perfume, error) {
	if perfume.ID == uuid.Nil {
		perfume.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(perfume).Error; err != nil {
		return nil, err
	}
	return perfume, nil
}

// FindByID loads a perfume with its brand and comments, comment authors
// included.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Perfume, error) {
	var perfume models.Perfume
	err := r.db.WithContext(ctx).
		Preload("Brand").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Comments.Author").
		First(&perfume, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &perfume, nil
}

func (r *Repository) Save(ctx context.Context, perfume *models.Perfume) error {
	return r.db.WithContext(ctx).Save(perfume).Error
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Perfume{}, "id = ?", id).Error
}

// CountByBrand reports how many perfumes reference the brand.
func (r *Repository) CountByBrand(ctx context.Context, brandID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Perfume{}).
		Where("brand_id = ?", brandID).
		Count(&count).Error
	return count, err
}

// List returns perfumes with their brands, applying the filter.
func (r *Repository) List(ctx context.Context, filter ListFilter) ([]models.Perfume, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Perfume{}).
		Preload("Brand").
		Order("created_at DESC")
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Name+"%")
	}
	if filter.BrandID != uuid.Nil {
		query = query.Where("brand_id = ?", filter.BrandID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", filter.MaxPrice)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var perfumes []models.Perfume
	if err := query.Find(&perfumes).Error; err != nil {
		return nil, err
	}
	return perfumes, nil
}

// FindComment loads a single comment row.
func (r *Repository) FindComment(ctx context.Context, perfumeID, commentID uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Where("id = ? AND perfume_id = ?", commentID, perfumeID).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindCommentByAuthor loads the author's comment on a perfume, if any.
func (r *Repository) FindCommentByAuthor(ctx context.Context, perfumeID, authorID uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Where("perfume_id = ? AND author_id = ?", perfumeID, authorID).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *Repository) CreateComment(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (r *Repository) SaveComment(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *Repository) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Comment{}, "id = ?", commentID).Error
}
