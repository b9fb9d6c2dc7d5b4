package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/TuancoderLo/perfume-api/api/responses"
	pkgAuth "github.com/TuancoderLo/perfume-api/pkg/auth"
	"github.com/TuancoderLo/perfume-api/pkg/db"
	"github.com/TuancoderLo/perfume-api/pkg/db/models"
	pkgerrors "github.com/TuancoderLo/perfume-api/pkg/errors"
	"github.com/TuancoderLo/perfume-api/pkg/logger"
	"github.com/google/uuid"
)

type tokenParser interface {
	ParseAccessToken(raw string) (*pkgAuth.AccessTokenClaims, error)
}

type memberSource interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Member, error)
}

// Auth validates a bearer token, resolves the live member row and seeds the
// request context. Admin and block state come from the row, not the token,
// so moderation takes effect on the next request.
func Auth(parser tokenParser, members memberSource, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := parser.ParseAccessToken(token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeForbidden, err, "invalid token"))
				return
			}

			member, err := members.FindByID(r.Context(), claims.MemberID)
			if err != nil {
				if db.IsNotFound(err) {
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "account no longer exists"))
					return
				}
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load member"))
				return
			}

			if member.IsBlocked {
				reason := member.BlockReason
				if reason == "" {
					reason = "No reason provided"
				}
				blocked := pkgerrors.New(pkgerrors.CodeForbidden, "Your account has been blocked").
					WithDetails(map[string]any{
						"reason":    reason,
						"blockedAt": member.BlockedAt,
					})
				responses.WriteError(r.Context(), logg, w, blocked)
				return
			}

			ctx := WithMember(r.Context(), member.ID, member.IsAdmin)
			if logg != nil {
				ctx = logg.WithMemberID(ctx, member.ID.String())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return raw
}
