package controllers

import (
	"context"
	"net/http"

	"github.com/TuancoderLo/perfume-api/api/responses"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthLive reports process liveness only.
func HealthLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}

// Health reports liveness and database connectivity.
func Health(database pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok"}
		if database != nil {
			if err := database.Ping(r.Context()); err != nil {
				status["status"] = "degraded"
				status["database"] = "unreachable"
				responses.WriteSuccessStatus(w, http.StatusServiceUnavailable, status)
				return
			}
			status["database"] = "ok"
		}
		responses.WriteSuccess(w, status)
	}
}
