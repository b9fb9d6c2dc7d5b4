package controllers

import (
	"net/http"

	"github.com/TuancoderLo/perfume-api/api/middleware"
	"github.com/TuancoderLo/perfume-api/api/responses"
	"github.com/TuancoderLo/perfume-api/api/validators"
	"github.com/TuancoderLo/perfume-api/internal/members"
	"github.com/TuancoderLo/perfume-api/pkg/logger"
)

// Profile returns the caller's own member record.
func Profile(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID := middleware.MemberIDFromContext(r.Context())
		result, err := svc.Profile(r.Context(), memberID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// UpdateProfile applies a partial update to the caller's own record.
func UpdateProfile(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body members.UpdateProfileRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		memberID := middleware.MemberIDFromContext(r.Context())
		result, err := svc.UpdateProfile(r.Context(), memberID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// ChangePassword rotates the caller's password after verifying the current
// one.
func ChangePassword(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body members.ChangePasswordRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		memberID := middleware.MemberIDFromContext(r.Context())
		if err := svc.ChangePassword(r.Context(), memberID, body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"message": "Password updated"})
	}
}
