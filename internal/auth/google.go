package auth

import (
	"context"
	"fmt"

	"github.com/TuancoderLo/perfume-api/internal/members"
	"github.com/TuancoderLo/perfume-api/pkg/db"
	"github.com/TuancoderLo/perfume-api/pkg/db/models"
	pkgerrors "github.com/TuancoderLo/perfume-api/pkg/errors"
	"github.com/TuancoderLo/perfume-api/pkg/googleauth"
	"github.com/TuancoderLo/perfume-api/pkg/security"
)

// Year of birth recorded for members created through Google sign-in, which
// carries no birth date.
const googleDefaultYearOfBirth = 1990

// GoogleLogin signs a member in with a Google identity. Accounts are matched
// by Google subject first and email second; an email match backfills the
// subject on first external login so later logins take the first path.
func (s *service) GoogleLogin(ctx context.Context, req GoogleLoginRequest) (*GoogleLoginResponse, error) {
	payload, err := s.googlePayload(ctx, req)
	if err != nil {
		return nil, err
	}

	if member, err := s.repo.FindByGoogleID(ctx, payload.Subject); err == nil {
		return s.googleRespond(member)
	} else if !db.IsNotFound(err) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load member by subject")
	}

	email := normalizeEmail(payload.Email)
	if member, err := s.repo.FindByEmail(ctx, email); err == nil {
		if member.GoogleID == nil {
			member.GoogleID = &payload.Subject
		}
		if member.PhotoURL == "" {
			member.PhotoURL = payload.PhotoURL
		}
		if err := s.repo.Save(ctx, member); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "link google account")
		}
		return s.googleRespond(member)
	} else if !db.IsNotFound(err) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load member by email")
	}

	name := payload.Name
	if name == "" {
		name = email
	}
	member, err := s.repo.Create(ctx, &models.Member{
		Name:         name,
		Email:        email,
		PasswordHash: security.ExternalAuthSentinel,
		YearOfBirth:  googleDefaultYearOfBirth,
		Gender:       true,
		GoogleID:     &payload.Subject,
		PhotoURL:     payload.PhotoURL,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create google member")
	}
	return s.googleRespond(member)
}

func (s *service) googleRespond(member *models.Member) (*GoogleLoginResponse, error) {
	token, err := s.minter.Mint(member.ID, member.IsAdmin)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint token")
	}
	return &GoogleLoginResponse{Token: token, User: members.ToDTO(member)}, nil
}

func (s *service) googlePayload(ctx context.Context, req GoogleLoginRequest) (*googleauth.Payload, error) {
	if req.IDToken == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "ID token is required")
	}

	// A supplied profile takes priority over verification: the token is not
	// checked, and a synthetic subject keeps the account's google_id stable.
	if req.Email != "" && req.Name != "" {
		return &googleauth.Payload{
			Subject:  fmt.Sprintf("google-%d", s.now().UnixMilli()),
			Email:    req.Email,
			Name:     req.Name,
			PhotoURL: req.PhotoURL,
		}, nil
	}

	if s.verifier == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Google sign-in is not configured")
	}
	payload, err := s.verifier.Verify(ctx, req.IDToken)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid google token")
	}
	return payload, nil
}
