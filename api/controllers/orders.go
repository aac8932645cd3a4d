package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shiprakart/seller-backend/api/responses"
	"github.com/shiprakart/seller-backend/api/validators"
	"github.com/shiprakart/seller-backend/internal/orders"
	pkgerrors "github.com/shiprakart/seller-backend/pkg/errors"
	"github.com/shiprakart/seller-backend/pkg/logger"
)

// MyOrders lists every order line containing one of the seller's products,
// newest orders first.
func MyOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := requireSeller(w, r, logg)
		if !ok {
			return
		}

		items, err := svc.ListSellerItems(r.Context(), sellerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WritePayload(w, http.StatusOK, map[string]any{"orders": items})
	}
}

type itemStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateItemStatus moves one of the seller's order lines through the
// fulfilment states.
func UpdateItemStatus(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := requireSeller(w, r, logg)
		if !ok {
			return
		}

		itemID, err := uuid.Parse(chi.URLParam(r, "orderItemId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid order item id"))
			return
		}

		var req itemStatusRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.UpdateItemStatus(r.Context(), sellerID, itemID, req.Status); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, http.StatusOK, "Order item status updated")
	}
}

// Dashboard aggregates revenue, best sellers and low-stock alerts for the
// seller's home screen.
func Dashboard(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := requireSeller(w, r, logg)
		if !ok {
			return
		}

		dashboard, err := svc.Dashboard(r.Context(), sellerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteData(w, http.StatusOK, dashboard)
	}
}
