package controllers

import (
	"net/http"

	"github.com/TuancoderLo/perfume-api/api/responses"
	"github.com/TuancoderLo/perfume-api/api/validators"
	"github.com/TuancoderLo/perfume-api/internal/perfumes"
	"github.com/TuancoderLo/perfume-api/pkg/logger"
	"github.com/go-chi/chi/v5"
)

func perfumeListFilter(r *http.Request) (perfumes.ListFilter, error) {
	limit, err := validators.ParseQueryInt(r, "limit", 0, 0, 500)
	if err != nil {
		return perfumes.ListFilter{}, err
	}
	offset, err := validators.ParseQueryInt(r, "offset", 0, 0, 1<<30)
	if err != nil {
		return perfumes.ListFilter{}, err
	}
	brandID, err := validators.ParseQueryUUID(r, "brandId")
	if err != nil {
		return perfumes.ListFilter{}, err
	}
	minPrice, err := validators.ParseQueryDecimal(r, "minPrice")
	if err != nil {
		return perfumes.ListFilter{}, err
	}
	maxPrice, err := validators.ParseQueryDecimal(r, "maxPrice")
	if err != nil {
		return perfumes.ListFilter{}, err
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		name = r.URL.Query().Get("q")
	}

	return perfumes.ListFilter{
		Name:     name,
		Brand:    r.URL.Query().Get("brand"),
		BrandID:  brandID,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

func ListPerfumes(svc perfumes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := perfumeListFilter(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func GetPerfume(svc perfumes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "perfumeID"), "perfumeID")
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

func CreatePerfume(svc perfumes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body perfumes.CreatePerfumeRequest
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

func UpdatePerfume(svc perfumes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "perfumeID"), "perfumeID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body perfumes.UpdatePerfumeRequest
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

func DeletePerfume(svc perfumes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "perfumeID"), "perfumeID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}
