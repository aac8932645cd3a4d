package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/shiprakart/seller-backend/api/responses"
	pkgerrors "github.com/shiprakart/seller-backend/pkg/errors"
	"github.com/shiprakart/seller-backend/pkg/logger"
)

const readinessTimeout = 3 * time.Second

// Pinger is any dependency the readiness probe should verify.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthLive reports process liveness.
func HealthLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteMessage(w, http.StatusOK, "ok")
	}
}

// HealthReady verifies the backing stores are reachable.
func HealthReady(db, cache Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "database not ready"))
			return
		}
		if cache != nil {
			if err := cache.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "redis not ready"))
				return
			}
		}
		responses.WriteMessage(w, http.StatusOK, "ready")
	}
}
