package middleware

import (
	"net/http"

	"github.com/TuancoderLo/perfume-api/api/responses"
	pkgerrors "github.com/TuancoderLo/perfume-api/pkg/errors"
	"github.com/TuancoderLo/perfume-api/pkg/logger"
)

// RequireAdmin gates a route to members whose row carries the admin flag.
// It must run after Auth.
func RequireAdmin(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsAdminFromContext(r.Context()) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "admin access required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
