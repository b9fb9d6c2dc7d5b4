package members

import (
	"context"

	"github.com/TuancoderLo/perfume-api/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes member persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a members repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new member and returns the persisted model.
func (r *Repository) Create(ctx context.Context, member *models.Member) (*models.Member, error) {
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

// FindByID loads a member by their UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	var member models.Member
	if err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByEmail retrieves the member matching the provided email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Member, error) {
	var member models.Member
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByGoogleID retrieves the member linked to a Google subject.
func (r *Repository) FindByGoogleID(ctx context.Context, googleID string) (*models.Member, error) {
	var member models.Member
	if err := r.db.WithContext(ctx).Where("google_id = ?", googleID).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// Save persists all fields of an already loaded member.
func (r *Repository) Save(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

// List returns members ordered by creation time, applying the filter.
func (r *Repository) List(ctx context.Context, filter ListFilter) ([]models.Member, error) {
	query := r.db.WithContext(ctx).Model(&models.Member{}).Order("created_at ASC")
	if filter.Blocked != nil {
		query = query.Where("is_blocked = ?", *filter.Blocked)
	}
	if filter.Admin != nil {
		query = query.Where("is_admin = ?", *filter.Admin)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var members []models.Member
	if err := query.Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
