package controllers

import (
	"net/http"

	"github.com/shiprakart/seller-backend/api/responses"
	"github.com/shiprakart/seller-backend/api/validators"
	"github.com/shiprakart/seller-backend/internal/onboarding"
	"github.com/shiprakart/seller-backend/pkg/logger"
)

// AddWarehouse handles the fulfillment location section.
func AddWarehouse(svc onboarding.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := requireSeller(w, r, logg)
		if !ok {
			return
		}

		var payload warehouseRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		warehouse, err := svc.RecordWarehouse(r.Context(), sellerID, onboarding.WarehouseInput{
			Pincode:            payload.Pincode,
			GSTINDetails:       payload.GSTINDetails,
			City:               payload.City,
			State:              payload.State,
			Country:            payload.Country,
			FloorDetails:       payload.FloorDetails,
			FullAddress:        payload.FullAddress,
			OperatingStartTime: payload.OperatingStartTime,
			OperatingEndTime:   payload.OperatingEndTime,
			WarehouseEmail:     payload.WarehouseEmail,
			WarehouseContact:   payload.WarehouseContact,
			ProcessingCapacity: payload.ProcessingCapacity,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WritePayload(w, http.StatusCreated, map[string]any{
			"message":   "Warehouse added successfully",
			"warehouse": warehouse,
		})
	}
}

type warehouseRequest struct {
	Pincode            string  `json:"pincode" validate:"required"`
	GSTINDetails       *string `json:"gstin_details,omitempty"`
	City               string  `json:"city" validate:"required"`
	State              string  `json:"state" validate:"required"`
	Country            *string `json:"country,omitempty"`
	FloorDetails       *string `json:"floor_details,omitempty"`
	FullAddress        string  `json:"full_address" validate:"required"`
	OperatingStartTime *string `json:"operating_start_time,omitempty"`
	OperatingEndTime   *string `json:"operating_end_time,omitempty"`
	WarehouseEmail     *string `json:"warehouse_email,omitempty" validate:"omitempty,email"`
	WarehouseContact   *string `json:"warehouse_contact,omitempty"`
	ProcessingCapacity int     `json:"processing_capacity,omitempty" validate:"omitempty,min=0"`
}
