package controllers

import (
	"net/http"

	"github.com/TuancoderLo/perfume-api/api/middleware"
	"github.com/TuancoderLo/perfume-api/api/responses"
	"github.com/TuancoderLo/perfume-api/api/validators"
	"github.com/TuancoderLo/perfume-api/internal/members"
	"github.com/TuancoderLo/perfume-api/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// ListMembers serves the admin member directory with optional filters.
func ListMembers(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, 500)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		offset, err := validators.ParseQueryInt(r, "offset", 0, 0, 1<<30)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		blocked, err := validators.ParseQueryBool(r, "blocked")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		admin, err := validators.ParseQueryBool(r, "admin")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), members.ListFilter{
			Blocked: blocked,
			Admin:   admin,
			Limit:   limit,
			Offset:  offset,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// ListCollectors serves the non-admin member listing used by the moderation
// screens.
func ListCollectors(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blocked, err := validators.ParseQueryBool(r, "blocked")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		admin := false
		result, err := svc.List(r.Context(), members.ListFilter{
			Blocked: blocked,
			Admin:   &admin,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func GetMember(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "memberID"), "memberID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// SetMemberAdmin toggles a member's admin flag.
func SetMemberAdmin(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "memberID"), "memberID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body members.SetAdminRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.SetAdminStatus(r.Context(), id, body.IsAdmin)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// BlockMember blocks a member, recording who blocked them and why.
func BlockMember(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "memberID"), "memberID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body members.BlockRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		actorID := middleware.MemberIDFromContext(r.Context())
		result, err := svc.Block(r.Context(), actorID, id, body.Reason)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// UnblockMember clears a member's block state.
func UnblockMember(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "memberID"), "memberID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Unblock(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
