package controllers

import (
	"net/http"

	"github.com/shiprakart/seller-backend/api/responses"
	"github.com/shiprakart/seller-backend/internal/onboarding"
	pkgerrors "github.com/shiprakart/seller-backend/pkg/errors"
	"github.com/shiprakart/seller-backend/pkg/logger"
	"github.com/shiprakart/seller-backend/pkg/storage"
)

// RecordBrand handles the brand declaration section. Logo, catalog sheet,
// and document proof arrive as multipart files.
func RecordBrand(svc onboarding.Service, store storage.ObjectStore, maxUploadMB int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := requireSeller(w, r, logg)
		if !ok {
			return
		}
		if err := parseMultipart(r, maxUploadMB); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if r.FormValue("brand_name") == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Brand name is required"))
			return
		}

		logoURL, err := uploadOptionalFile(r, store, "brand_logo")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		catalogURL, err := uploadOptionalFile(r, store, "catalog_details")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		proofURL, err := uploadOptionalFile(r, store, "document_proof")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := onboarding.BrandInput{
			BrandName:              r.FormValue("brand_name"),
			BrandLogoURL:           logoURL,
			CatalogDetailsURL:      catalogURL,
			NatureOfBusiness:       formValuePtr(r, "nature_of_business"),
			DocumentProofType:      formValuePtr(r, "document_proof_type"),
			DocumentProofURL:       proofURL,
			AverageMRP:             formDecimal(r, "average_mrp"),
			AverageSellingPrice:    formDecimal(r, "average_selling_price"),
			BrandCatalogWidth:      formInt(r, "brand_catalog_width"),
			AverageMonthlyTurnover: formDecimal(r, "average_monthly_turnover"),
			OnlineBusinessPercent:  formInt(r, "online_business_percent"),
			YearsOfOperation:       formInt(r, "years_of_operation"),
			BrandUSP:               formValuePtr(r, "brand_usp"),
			SustainabilityBadge:    formBool(r, "sustainability_badge"),
			PrimaryCategory:        formValuePtr(r, "primary_category"),
			SecondaryCategory:      formValuePtr(r, "secondary_category"),
			ArticleType:            formValuePtr(r, "article_type"),
			MasterCategory:         formValuePtr(r, "master_category"),
			Gender:                 formValuePtr(r, "gender"),
			MeasurementType:        formValuePtr(r, "measurement_type"),
			SellOnOtherPlatforms:   formBool(r, "sell_on_other_platforms"),
		}

		brand, nextStep, err := svc.RecordBrandDetails(r.Context(), sellerID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WritePayload(w, http.StatusCreated, map[string]any{
			"brand":    brand,
			"nextStep": nextStep,
		})
	}
}
