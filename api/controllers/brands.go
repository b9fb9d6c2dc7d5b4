package controllers

import (
	"net/http"

	"github.com/TuancoderLo/perfume-api/api/responses"
	"github.com/TuancoderLo/perfume-api/api/validators"
	"github.com/TuancoderLo/perfume-api/internal/brands"
	"github.com/TuancoderLo/perfume-api/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// ListBrands serves the active brand catalog. Admins may opt into seeing
// soft-deleted brands.
func ListBrands(svc brands.Service, logg *logger.Logger, allowDeleted bool) http.HandlerFunc {
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

		filter := brands.ListFilter{
			Name:   r.URL.Query().Get("name"),
			Limit:  limit,
			Offset: offset,
		}
		if allowDeleted {
			includeDeleted, err := validators.ParseQueryBool(r, "includeDeleted")
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			filter.IncludeDeleted = includeDeleted != nil && *includeDeleted
		}

		result, err := svc.List(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func GetBrand(svc brands.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "brandID"), "brandID")
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

func CreateBrand(svc brands.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body brands.CreateBrandRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Create(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

func UpdateBrand(svc brands.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "brandID"), "brandID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body brands.UpdateBrandRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Update(r.Context(), id, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// DeleteBrand removes a brand: soft delete when perfumes reference it, hard
// delete otherwise.
func DeleteBrand(svc brands.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "brandID"), "brandID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Delete(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func RestoreBrand(svc brands.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "brandID"), "brandID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Restore(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
