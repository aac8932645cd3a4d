package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/shiprakart/seller-backend/api/responses"
	"github.com/shiprakart/seller-backend/api/validators"
	"github.com/shiprakart/seller-backend/internal/inventory"
	"github.com/shiprakart/seller-backend/pkg/logger"
)

type stockRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Amount    int       `json:"amount" validate:"required"`
	Reason    string    `json:"reason" validate:"required"`
}

// UpdateStock applies a signed stock adjustment and records it in the ledger.
func UpdateStock(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireSeller(w, r, logg); !ok {
			return
		}

		var req stockRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		newStock, err := svc.AdjustStock(r.Context(), req.ProductID, req.Amount, req.Reason)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WritePayload(w, http.StatusOK, map[string]any{
			"message":  "Stock updated successfully",
			"newStock": newStock,
		})
	}
}
