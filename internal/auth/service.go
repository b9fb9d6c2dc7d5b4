package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/TuancoderLo/perfume-api/pkg/config"
	"github.com/TuancoderLo/perfume-api/pkg/db"
	"github.com/TuancoderLo/perfume-api/pkg/db/models"
	pkgerrors "github.com/TuancoderLo/perfume-api/pkg/errors"
	"github.com/TuancoderLo/perfume-api/pkg/googleauth"
	"github.com/TuancoderLo/perfume-api/pkg/security"
	"github.com/google/uuid"
)

const invalidCredentialsMessage = "Invalid credentials"

// Service defines the behavior needed by the auth controllers.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) error
	AdminRegister(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	GoogleLogin(ctx context.Context, req GoogleLoginRequest) (*GoogleLoginResponse, error)
}

type memberRepository interface {
	Create(ctx context.Context, member *models.Member) (*models.Member, error)
	FindByEmail(ctx context.Context, email string) (*models.Member, error)
	FindByGoogleID(ctx context.Context, googleID string) (*models.Member, error)
	Save(ctx context.Context, member *models.Member) error
}

type tokenMinter interface {
	Mint(memberID uuid.UUID, isAdmin bool) (string, error)
}

type service struct {
	repo        memberRepository
	minter      tokenMinter
	verifier    googleauth.Verifier
	passwordCfg config.PasswordConfig
	now         func() time.Time
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	Repo        memberRepository
	Minter      tokenMinter
	Verifier    googleauth.Verifier
	PasswordCfg config.PasswordConfig
	Now         func() time.Time
}

// NewService constructs an auth service with the provided dependencies. The
// verifier may be nil, which disables verified Google sign-in.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("member repository is required")
	}
	if params.Minter == nil {
		return nil, fmt.Errorf("token minter is required")
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &service{
		repo:        params.Repo,
		minter:      params.Minter,
		verifier:    params.Verifier,
		passwordCfg: params.PasswordCfg,
		now:         params.Now,
	}, nil
}

// Register creates a regular account. The isAdmin field of the payload is
// ignored on this path. Registration never issues a token; members log in
// afterwards.
func (s *service) Register(ctx context.Context, req RegisterRequest) error {
	req.IsAdmin = false
	return s.register(ctx, req)
}

// AdminRegister creates an account honoring the isAdmin field. It sits
// behind the admin guard.
func (s *service) AdminRegister(ctx context.Context, req RegisterRequest) error {
	return s.register(ctx, req)
}

func (s *service) register(ctx context.Context, req RegisterRequest) error {
	email := normalizeEmail(req.Email)

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return pkgerrors.New(pkgerrors.CodeConflict, "Email already exists")
	} else if !db.IsNotFound(err) {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check email")
	}

	hash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	if _, err := s.repo.Create(ctx, &models.Member{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		YearOfBirth:  req.YearOfBirth,
		Gender:       req.Gender,
		IsAdmin:      req.IsAdmin,
	}); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create member")
	}

	return nil
}

// Login authenticates password credentials. The failure message never
// distinguishes an unknown email from a wrong password, and Google-only
// accounts fail the same way.
func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	member, err := s.repo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeInvalidCredentials, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load member")
	}

	ok, err := security.VerifyPassword(req.Password, member.PasswordHash)
	if err != nil || !ok {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidCredentials, invalidCredentialsMessage)
	}

	token, err := s.minter.Mint(member.ID, member.IsAdmin)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint token")
	}
	return &LoginResponse{Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
