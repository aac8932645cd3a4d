package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shiprakart/seller-backend/api/responses"
	"github.com/shiprakart/seller-backend/internal/hierarchy"
	pkgerrors "github.com/shiprakart/seller-backend/pkg/errors"
	"github.com/shiprakart/seller-backend/pkg/logger"
)

// CategoryTree returns the full navigation hierarchy as flat joined rows.
func CategoryTree(svc hierarchy.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.Tree(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteData(w, http.StatusOK, rows)
	}
}

// ProductTypes lists the leaves under one subcategory.
func ProductTypes(svc hierarchy.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subID, err := uuid.Parse(chi.URLParam(r, "subId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid subcategory id"))
			return
		}

		types, err := svc.TypesBySubcategory(r.Context(), subID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WritePayload(w, http.StatusOK, map[string]any{"types": types})
	}
}
