package controllers

import (
	"net/http"

	"github.com/TuancoderLo/perfume-api/api/middleware"
	"github.com/TuancoderLo/perfume-api/api/responses"
	"github.com/TuancoderLo/perfume-api/api/validators"
	"github.com/TuancoderLo/perfume-api/internal/perfumes"
	"github.com/TuancoderLo/perfume-api/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// AddComment posts the caller's review of a perfume.
func AddComment(svc perfumes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		perfumeID, err := validators.ParsePathUUID(chi.URLParam(r, "perfumeID"), "perfumeID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body perfumes.AddCommentRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		authorID := middleware.MemberIDFromContext(r.Context())
		result, err := svc.AddComment(r.Context(), perfumeID, authorID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// EditComment applies a partial edit to the caller's own review.
func EditComment(svc perfumes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		perfumeID, err := validators.ParsePathUUID(chi.URLParam(r, "perfumeID"), "perfumeID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		commentID, err := validators.ParsePathUUID(chi.URLParam(r, "commentID"), "commentID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body perfumes.EditCommentRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		actorID := middleware.MemberIDFromContext(r.Context())
		result, err := svc.EditComment(r.Context(), perfumeID, commentID, actorID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// DeleteComment removes the caller's own review.
func DeleteComment(svc perfumes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		perfumeID, err := validators.ParsePathUUID(chi.URLParam(r, "perfumeID"), "perfumeID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		commentID, err := validators.ParsePathUUID(chi.URLParam(r, "commentID"), "commentID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		actorID := middleware.MemberIDFromContext(r.Context())
		if err := svc.DeleteComment(r.Context(), perfumeID, commentID, actorID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}
