package perfumes

import (
	"context"
	"fmt"

	"github.com/TuancoderLo/perfume-api/pkg/db"
	"github.com/TuancoderLo/perfume-api/pkg/db/models"
	pkgerrors "github.com/TuancoderLo/perfume-api/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service defines the behavior needed by the perfume controllers.
type Service interface {
	List(ctx context.Context, filter ListFilter) ([]PerfumeDTO, error)
	PublicList(ctx context.Context, filter ListFilter) ([]PublicPerfumeDTO, error)
	PublicGet(ctx context.Context, id uuid.UUID) (*PublicPerfumeDetailDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*PerfumeDTO, error)
	Create(ctx context.Context, req CreatePerfumeRequest) (*PerfumeDTO, error)
	Update(ctx context.Context, id uuid.UUID, req UpdatePerfumeRequest) (*PerfumeDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddComment(ctx context.Context, perfumeID, authorID uuid.UUID, req AddCommentRequest) (*CommentDTO, error)
	EditComment(ctx context.Context, perfumeID, commentID, actorID uuid.UUID, req EditCommentRequest) (*CommentDTO, error)
	DeleteComment(ctx context.Context, perfumeID, commentID, actorID uuid.UUID) error
}

type brandSource interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Brand, error)
	FindByName(ctx context.Context, name string) (*models.Brand, error)
}

type service struct {
	repo   *Repository
	brands brandSource
	client *db.Client
}

// ServiceParams bundles the dependencies required to build a perfume service.
type ServiceParams struct {
	Repo   *Repository
	Brands brandSource
	Client *db.Client
}

func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("perfume repository is required")
	}
	if params.Brands == nil {
		return nil, fmt.Errorf("brand source is required")
	}
	if params.Client == nil {
		return nil, fmt.Errorf("db client is required")
	}
	return &service{repo: params.Repo, brands: params.Brands, client: params.Client}, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]PerfumeDTO, error) {
	filter, matched, err := s.applyBrandFilter(ctx, filter, false)
	if err != nil {
		return nil, err
	}
	if !matched {
		return []PerfumeDTO{}, nil
	}
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list perfumes")
	}
	return ToDTOs(rows), nil
}

func (s *service) PublicList(ctx context.Context, filter ListFilter) ([]PublicPerfumeDTO, error) {
	filter, matched, err := s.applyBrandFilter(ctx, filter, true)
	if err != nil {
		return nil, err
	}
	if !matched {
		return []PublicPerfumeDTO{}, nil
	}
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list perfumes")
	}
	return ToPublicDTOs(rows), nil
}

func (s *service) PublicGet(ctx context.Context, id uuid.UUID) (*PublicPerfumeDetailDTO, error) {
	perfume, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := ToPublicDetailDTO(perfume)
	return &dto, nil
}

// applyBrandFilter resolves a brand filter given as a uuid or a name. A name
// that resolves to nothing (or, on the public path, to a deleted brand) means
// the listing has no matches.
func (s *service) applyBrandFilter(ctx context.Context, filter ListFilter, activeOnly bool) (ListFilter, bool, error) {
	if filter.Brand == "" {
		return filter, true, nil
	}
	if id, err := uuid.Parse(filter.Brand); err == nil {
		filter.BrandID = id
		return filter, true, nil
	}
	brand, err := s.brands.FindByName(ctx, filter.Brand)
	if err != nil {
		if db.IsNotFound(err) {
			return filter, false, nil
		}
		return filter, false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve brand filter")
	}
	if activeOnly && brand.Deleted() {
		return filter, false, nil
	}
	filter.BrandID = brand.ID
	return filter, true, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*PerfumeDTO, error) {
	perfume, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := ToDTO(perfume)
	return &dto, nil
}

func (s *service) Create(ctx context.Context, req CreatePerfumeRequest) (*PerfumeDTO, error) {
	if err := s.checkBrand(ctx, req.BrandID); err != nil {
		return nil, err
	}

	perfume, err := s.repo.Create(ctx, &models.Perfume{
		Name:          req.Name,
		BrandID:       req.BrandID,
		Price:         req.Price,
		Description:   req.Description,
		Volume:        req.Volume,
		ImageURL:      req.ImageURL,
		Concentration: req.Concentration,
		TargetGender:  req.TargetGender,
		Category:      req.Category,
		ReleaseYear:   req.ReleaseYear,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create perfume")
	}
	return s.Get(ctx, perfume.ID)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdatePerfumeRequest) (*PerfumeDTO, error) {
	perfume, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.BrandID != nil && *req.BrandID != perfume.BrandID {
		if err := s.checkBrand(ctx, *req.BrandID); err != nil {
			return nil, err
		}
		perfume.BrandID = *req.BrandID
	}
	if req.Name != nil {
		perfume.Name = *req.Name
	}
	if req.Price != nil {
		perfume.Price = *req.Price
	}
	if req.Description != nil {
		perfume.Description = *req.Description
	}
	if req.Volume != nil {
		perfume.Volume = *req.Volume
	}
	if req.ImageURL != nil {
		perfume.ImageURL = *req.ImageURL
	}
	if req.Concentration != nil {
		perfume.Concentration = *req.Concentration
	}
	if req.TargetGender != nil {
		perfume.TargetGender = *req.TargetGender
	}
	if req.Category != nil {
		perfume.Category = *req.Category
	}
	if req.ReleaseYear != nil {
		perfume.ReleaseYear = *req.ReleaseYear
	}

	// Save through a bare row so preloaded associations are not re-written.
	row := *perfume
	row.Brand = nil
	row.Comments = nil
	if err := s.repo.Save(ctx, &row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update perfume")
	}
	return s.Get(ctx, perfume.ID)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	perfume, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	return s.client.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		for i := range perfume.Comments {
			if err := repo.DeleteComment(ctx, perfume.Comments[i].ID); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete comments")
			}
		}
		if err := repo.Delete(ctx, perfume.ID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete perfume")
		}
		return nil
	})
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.Perfume, error) {
	perfume, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Perfume not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load perfume")
	}
	return perfume, nil
}

// checkBrand verifies the referenced brand row exists. Soft-deleted brands
// are a valid reference; clients warn about them, the API does not block.
func (s *service) checkBrand(ctx context.Context, brandID uuid.UUID) error {
	if _, err := s.brands.FindByID(ctx, brandID); err != nil {
		if db.IsNotFound(err) {
			return pkgerrors.New(pkgerrors.CodeValidation, "Brand not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check brand")
	}
	return nil
}
