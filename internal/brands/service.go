package brands

import (
	"context"
	"fmt"
	"time"

	"github.com/TuancoderLo/perfume-api/pkg/db"
	"github.com/TuancoderLo/perfume-api/pkg/db/models"
	pkgerrors "github.com/TuancoderLo/perfume-api/pkg/errors"
	"github.com/google/uuid"
)

// Service defines the behavior needed by the brand controllers.
type Service interface {
	List(ctx context.Context, filter ListFilter) ([]BrandDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*BrandDTO, error)
	Create(ctx context.Context, req CreateBrandRequest) (*BrandDTO, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateBrandRequest) (*BrandDTO, error)
	Delete(ctx context.Context, id uuid.UUID) (*DeleteResult, error)
	Restore(ctx context.Context, id uuid.UUID) (*BrandDTO, error)
}

type brandRepository interface {
	Create(ctx context.Context, brand *models.Brand) (*models.Brand, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Brand, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Brand, error)
	FindDeletedByID(ctx context.Context, id uuid.UUID) (*models.Brand, error)
	FindByName(ctx context.Context, name string) (*models.Brand, error)
	Save(ctx context.Context, brand *models.Brand) error
	HardDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ListFilter) ([]models.Brand, error)
}

type perfumeCounter interface {
	CountByBrand(ctx context.Context, brandID uuid.UUID) (int64, error)
}

type service struct {
	repo     brandRepository
	perfumes perfumeCounter
	now      func() time.Time
}

// ServiceParams bundles the dependencies required to build a brand service.
type ServiceParams struct {
	Repo     brandRepository
	Perfumes perfumeCounter
	Now      func() time.Time
}

func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("brand repository is required")
	}
	if params.Perfumes == nil {
		return nil, fmt.Errorf("perfume counter is required")
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &service{repo: params.Repo, perfumes: params.Perfumes, now: params.Now}, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]BrandDTO, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list brands")
	}
	return ToDTOs(rows), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*BrandDTO, error) {
	brand, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Brand not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load brand")
	}
	dto := ToDTO(brand)
	return &dto, nil
}

func (s *service) Create(ctx context.Context, req CreateBrandRequest) (*BrandDTO, error) {
	if existing, err := s.repo.FindByName(ctx, req.Name); err == nil && existing != nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "Brand name already exists")
	} else if err != nil && !db.IsNotFound(err) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check brand name")
	}

	brand, err := s.repo.Create(ctx, &models.Brand{Name: req.Name})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create brand")
	}
	dto := ToDTO(brand)
	return &dto, nil
}

// Update applies a partial update regardless of the brand's deletion state,
// so admins can fix a soft-deleted brand before restoring it.
func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdateBrandRequest) (*BrandDTO, error) {
	brand, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Brand not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load brand")
	}

	if req.Name != nil && *req.Name != brand.Name {
		if existing, err := s.repo.FindByName(ctx, *req.Name); err == nil && existing != nil && existing.ID != brand.ID {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "Brand name already exists")
		} else if err != nil && !db.IsNotFound(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check brand name")
		}
		brand.Name = *req.Name
	}

	if err := s.repo.Save(ctx, brand); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update brand")
	}
	dto := ToDTO(brand)
	return &dto, nil
}

// Delete soft-deletes a brand that still has perfumes and removes an empty
// brand outright. Only active brands can be deleted.
func (s *service) Delete(ctx context.Context, id uuid.UUID) (*DeleteResult, error) {
	brand, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Brand not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load brand")
	}

	count, err := s.perfumes.CountByBrand(ctx, brand.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count perfumes")
	}

	if count > 0 {
		now := s.now()
		brand.IsDeleted = true
		brand.DeletedAt = &now
		if err := s.repo.Save(ctx, brand); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "soft delete brand")
		}
		return &DeleteResult{SoftDeleted: true, ProductCount: int(count)}, nil
	}

	if err := s.repo.HardDelete(ctx, brand.ID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete brand")
	}
	return &DeleteResult{SoftDeleted: false, ProductCount: 0}, nil
}

// Restore clears both deletion markers. A brand qualifies when either marker
// is set.
func (s *service) Restore(ctx context.Context, id uuid.UUID) (*BrandDTO, error) {
	brand, err := s.repo.FindDeletedByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Deleted brand not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load deleted brand")
	}

	brand.IsDeleted = false
	brand.DeletedAt = nil

	if err := s.repo.Save(ctx, brand); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "restore brand")
	}
	dto := ToDTO(brand)
	return &dto, nil
}
