package controllers

import (
	"net/http"

	"github.com/TuancoderLo/perfume-api/api/responses"
	"github.com/TuancoderLo/perfume-api/api/validators"
	"github.com/TuancoderLo/perfume-api/internal/brands"
	"github.com/TuancoderLo/perfume-api/internal/perfumes"
	"github.com/TuancoderLo/perfume-api/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// PublicListPerfumes serves the unauthenticated catalog projection.
func PublicListPerfumes(svc perfumes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := perfumeListFilter(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.PublicList(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// PublicGetPerfume serves the formatted unauthenticated detail view.
func PublicGetPerfume(svc perfumes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "perfumeID"), "perfumeID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.PublicGet(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// PublicListBrands serves the unauthenticated active brand list.
func PublicListBrands(svc brands.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.List(r.Context(), brands.ListFilter{Name: r.URL.Query().Get("name")})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
