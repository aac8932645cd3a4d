package controllers

import (
	"net/http"

	"github.com/shiprakart/seller-backend/api/responses"
	"github.com/shiprakart/seller-backend/api/validators"
	"github.com/shiprakart/seller-backend/internal/onboarding"
	"github.com/shiprakart/seller-backend/pkg/logger"
	"github.com/shiprakart/seller-backend/pkg/storage"
)

// RecordGST handles the tax identity onboarding section.
func RecordGST(svc onboarding.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := requireSeller(w, r, logg)
		if !ok {
			return
		}

		var payload gstRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		nextStep, err := svc.RecordGSTDetails(r.Context(), sellerID, onboarding.GSTInput{
			GSTNumber: payload.GSTNumber,
			PANNumber: payload.PANNumber,
			HasGST:    payload.HasGST,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WritePayload(w, http.StatusOK, map[string]any{"nextStep": nextStep})
	}
}

// RecordBasicInfo handles the business information section. The signature
// and TAN document arrive as multipart files and are stored before the
// service runs.
func RecordBasicInfo(svc onboarding.Service, store storage.ObjectStore, maxUploadMB int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := requireSeller(w, r, logg)
		if !ok {
			return
		}
		if err := parseMultipart(r, maxUploadMB); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		signatureURL, err := uploadOptionalFile(r, store, "signature")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		tanDocURL, err := uploadOptionalFile(r, store, "tan_document")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := onboarding.BasicInfoInput{
			OrganizationEmail:   formValuePtr(r, "organization_email"),
			PrimaryContactName:  formValuePtr(r, "primary_contact_name"),
			PrimaryContactPhone: formValuePtr(r, "primary_contact_phone"),
			PrimaryContactEmail: formValuePtr(r, "primary_contact_email"),
			BusinessOwnerName:   formValuePtr(r, "business_owner_name"),
			OwnerContactNumber:  formValuePtr(r, "owner_contact_number"),
			OwnerEmailID:        formValuePtr(r, "owner_email_id"),
			IsExistingPartner:   formBoolPtr(r, "is_existing_partner"),
			EntityType:          formValuePtr(r, "entity_type"),
			MarketplaceInvoice:  formBoolPtr(r, "marketplace_invoice"),
			NeedsTDSBenefits:    formBoolPtr(r, "needs_tds_benefits"),
			TANNumber:           formValuePtr(r, "tan_number"),
			Password:            formValuePtr(r, "password"),
			SignatureURL:        signatureURL,
			TANDocumentURL:      tanDocURL,
		}

		nextStep, err := svc.RecordBasicInfo(r.Context(), sellerID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WritePayload(w, http.StatusOK, map[string]any{
			"message":  "Basic information saved",
			"nextStep": nextStep,
		})
	}
}

// RecordBank handles the settlement account section with an optional
// cancelled cheque image.
func RecordBank(svc onboarding.Service, store storage.ObjectStore, maxUploadMB int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := requireSeller(w, r, logg)
		if !ok {
			return
		}
		if err := parseMultipart(r, maxUploadMB); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		chequeURL, err := uploadOptionalFile(r, store, "cancelled_cheque")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := onboarding.BankInput{
			AccountHolderName:  formValuePtr(r, "account_holder_name"),
			AccountNumber:      formValuePtr(r, "account_number"),
			IFSCCode:           formValuePtr(r, "ifsc_code"),
			BankName:           formValuePtr(r, "bank_name"),
			AccountType:        formValuePtr(r, "account_type"),
			CancelledChequeURL: chequeURL,
		}

		nextStep, err := svc.RecordBankDetails(r.Context(), sellerID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WritePayload(w, http.StatusOK, map[string]any{
			"message":  "Bank details saved",
			"nextStep": nextStep,
		})
	}
}

// OnboardingStatus reports derived completeness.
func OnboardingStatus(svc onboarding.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := requireSeller(w, r, logg)
		if !ok {
			return
		}

		status, err := svc.Status(r.Context(), sellerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		fields := map[string]any{"isComplete": status.IsComplete}
		if status.IsComplete {
			fields["message"] = status.Message
		} else {
			fields["pendingParts"] = status.PendingParts
		}
		responses.WritePayload(w, http.StatusOK, fields)
	}
}

type gstRequest struct {
	GSTNumber string `json:"gst_number"`
	PANNumber string `json:"pan_number" validate:"required"`
	HasGST    bool   `json:"has_gst"`
}
