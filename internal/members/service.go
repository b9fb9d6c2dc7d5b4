package members

import (
	"context"
	"fmt"
	"time"

	"github.com/TuancoderLo/perfume-api/pkg/config"
	"github.com/TuancoderLo/perfume-api/pkg/db"
	"github.com/TuancoderLo/perfume-api/pkg/db/models"
	pkgerrors "github.com/TuancoderLo/perfume-api/pkg/errors"
	"github.com/TuancoderLo/perfume-api/pkg/security"
	"github.com/google/uuid"
)

const defaultBlockReason = "No reason provided"

// Service defines the behavior needed by the member controllers.
type Service interface {
	Profile(ctx context.Context, memberID uuid.UUID) (*MemberDTO, error)
	UpdateProfile(ctx context.Context, memberID uuid.UUID, req UpdateProfileRequest) (*MemberDTO, error)
	ChangePassword(ctx context.Context, memberID uuid.UUID, req ChangePasswordRequest) error
	List(ctx context.Context, filter ListFilter) ([]MemberDTO, error)
	Get(ctx context.Context, memberID uuid.UUID) (*MemberDTO, error)
	SetAdminStatus(ctx context.Context, memberID uuid.UUID, isAdmin bool) (*MemberDTO, error)
	Block(ctx context.Context, actorID, memberID uuid.UUID, reason string) (*MemberDTO, error)
	Unblock(ctx context.Context, memberID uuid.UUID) (*MemberDTO, error)
}

type memberRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Member, error)
	Save(ctx context.Context, member *models.Member) error
	List(ctx context.Context, filter ListFilter) ([]models.Member, error)
}

type service struct {
	repo        memberRepository
	passwordCfg config.PasswordConfig
	now         func() time.Time
}

// ServiceParams bundles the dependencies required to build a member service.
type ServiceParams struct {
	Repo        memberRepository
	PasswordCfg config.PasswordConfig
	Now         func() time.Time
}

// NewService constructs a member service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("member repository is required")
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &service{
		repo:        params.Repo,
		passwordCfg: params.PasswordCfg,
		now:         params.Now,
	}, nil
}

func (s *service) Profile(ctx context.Context, memberID uuid.UUID) (*MemberDTO, error) {
	member, err := s.load(ctx, memberID)
	if err != nil {
		return nil, err
	}
	dto := ToDTO(member)
	return &dto, nil
}

func (s *service) UpdateProfile(ctx context.Context, memberID uuid.UUID, req UpdateProfileRequest) (*MemberDTO, error) {
	member, err := s.load(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.YearOfBirth != nil {
		member.YearOfBirth = *req.YearOfBirth
	}
	if req.Gender != nil {
		member.Gender = *req.Gender
	}
	if req.PhotoURL != nil {
		member.PhotoURL = *req.PhotoURL
	}

	if err := s.repo.Save(ctx, member); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update profile")
	}
	dto := ToDTO(member)
	return &dto, nil
}

func (s *service) ChangePassword(ctx context.Context, memberID uuid.UUID, req ChangePasswordRequest) error {
	member, err := s.load(ctx, memberID)
	if err != nil {
		return err
	}

	ok, err := security.VerifyPassword(req.CurrentPassword, member.PasswordHash)
	if err != nil || !ok {
		return pkgerrors.New(pkgerrors.CodeValidation, "old password mismatch")
	}

	hash, err := security.HashPassword(req.NewPassword, s.passwordCfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}
	member.PasswordHash = hash

	if err := s.repo.Save(ctx, member); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save password")
	}
	return nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]MemberDTO, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list members")
	}
	return ToDTOs(rows), nil
}

func (s *service) Get(ctx context.Context, memberID uuid.UUID) (*MemberDTO, error) {
	return s.Profile(ctx, memberID)
}

func (s *service) SetAdminStatus(ctx context.Context, memberID uuid.UUID, isAdmin bool) (*MemberDTO, error) {
	member, err := s.load(ctx, memberID)
	if err != nil {
		return nil, err
	}

	member.IsAdmin = isAdmin
	if err := s.repo.Save(ctx, member); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "set admin status")
	}
	dto := ToDTO(member)
	return &dto, nil
}

func (s *service) Block(ctx context.Context, actorID, memberID uuid.UUID, reason string) (*MemberDTO, error) {
	member, err := s.load(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if member.IsAdmin {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Cannot block an admin")
	}
	if member.ID == actorID {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Cannot block yourself")
	}

	if reason == "" {
		reason = defaultBlockReason
	}
	now := s.now()
	member.IsBlocked = true
	member.BlockedAt = &now
	member.BlockedBy = &actorID
	member.BlockReason = reason

	if err := s.repo.Save(ctx, member); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "block member")
	}
	dto := ToDTO(member)
	return &dto, nil
}

func (s *service) Unblock(ctx context.Context, memberID uuid.UUID) (*MemberDTO, error) {
	member, err := s.load(ctx, memberID)
	if err != nil {
		return nil, err
	}

	member.IsBlocked = false
	member.BlockedAt = nil
	member.BlockedBy = nil
	member.BlockReason = ""

	if err := s.repo.Save(ctx, member); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unblock member")
	}
	dto := ToDTO(member)
	return &dto, nil
}

func (s *service) load(ctx context.Context, memberID uuid.UUID) (*models.Member, error) {
	member, err := s.repo.FindByID(ctx, memberID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Member not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load member")
	}
	return member, nil
}
