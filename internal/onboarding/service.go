package onboarding

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/shiprakart/seller-backend/pkg/db"
	"github.com/shiprakart/seller-backend/pkg/db/models"
	pkgerrors "github.com/shiprakart/seller-backend/pkg/errors"
	"github.com/shiprakart/seller-backend/pkg/security"
)

// current_step values assigned after each section completes. The cursor is
// coarse; completeness is always derived by Status, never from this value.
const (
	stepAfterGST       = 4
	stepAfterBasicInfo = 5
	stepAfterWarehouse = 5
	stepAfterBank      = 7
	stepAfterBrand     = 8
)

var (
	panPattern   = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
)

// Pending part labels are a client display contract.
const (
	partGSTINCheck       = "GSTIN Check"
	partBasicInformation = "Basic Information"
	partWarehouseDetails = "Warehouse Details"
	partBankDetails      = "Bank Details"
	partBrandDetails     = "Brand Details"

	completionMessage = "Submission Completed!"
)

// Service tracks a seller's progress through the onboarding sections.
type Service interface {
	RecordGSTDetails(ctx context.Context, sellerID uuid.UUID, input GSTInput) (int, error)
	RecordBasicInfo(ctx context.Context, sellerID uuid.UUID, input BasicInfoInput) (int, error)
	RecordBankDetails(ctx context.Context, sellerID uuid.UUID, input BankInput) (int, error)
	RecordBrandDetails(ctx context.Context, sellerID uuid.UUID, input BrandInput) (*BrandDTO, int, error)
	RecordWarehouse(ctx context.Context, sellerID uuid.UUID, input WarehouseInput) (*WarehouseDTO, error)
	Status(ctx context.Context, sellerID uuid.UUID) (*StatusDTO, error)
}

type sellerStore interface {
	FindSellerByID(ctx context.Context, sellerID uuid.UUID) (*models.Seller, error)
	UpdateSeller(ctx context.Context, sellerID uuid.UUID, updates map[string]any) error
	CreateBrand(ctx context.Context, brand *models.SellerBrand) error
	CreateWarehouse(ctx context.Context, wh *models.Warehouse) error
	CountBrands(ctx context.Context, sellerID uuid.UUID) (int64, error)
	CountWarehouses(ctx context.Context, sellerID uuid.UUID) (int64, error)
}

type service struct {
	repo     sellerStore
	verifier Verifier
}

// NewService constructs the onboarding service.
func NewService(repo sellerStore, verifier Verifier) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("onboarding repository required")
	}
	if verifier == nil {
		verifier = NoopVerifier{}
	}
	return &service{repo: repo, verifier: verifier}, nil
}

// ValidateGSTDetails checks PAN format always, and GSTIN format plus
// PAN containment when the seller declares a GST registration.
func ValidateGSTDetails(input GSTInput) error {
	pan := strings.ToUpper(strings.TrimSpace(input.PANNumber))
	if !panPattern.MatchString(pan) {
		return pkgerrors.New(pkgerrors.CodeValidation, "Invalid PAN format")
	}
	if input.HasGST {
		gstin := strings.ToUpper(strings.TrimSpace(input.GSTNumber))
		if !gstinPattern.MatchString(gstin) {
			return pkgerrors.New(pkgerrors.CodeValidation, "Invalid GSTIN format")
		}
		if !strings.Contains(gstin, pan) {
			return pkgerrors.New(pkgerrors.CodeValidation, "GSTIN does not match the provided PAN")
		}
	}
	return nil
}

func (s *service) RecordGSTDetails(ctx context.Context, sellerID uuid.UUID, input GSTInput) (int, error) {
	if err := ValidateGSTDetails(input); err != nil {
		return 0, err
	}

	pan := strings.ToUpper(strings.TrimSpace(input.PANNumber))
	updates := map[string]any{
		"pan_number":   pan,
		"has_gst":      input.HasGST,
		"current_step": stepAfterGST,
	}
	if input.HasGST {
		gstin := strings.ToUpper(strings.TrimSpace(input.GSTNumber))
		updates["gst_number"] = gstin

		// Registry lookup is best effort; the row works without it.
		if name, err := s.verifier.LegalName(ctx, gstin); err == nil && name != "" {
			updates["legal_business_name"] = name
		}
	}

	if err := s.repo.UpdateSeller(ctx, sellerID, updates); err != nil {
		return 0, mapSellerUpdateErr(err, "save GST details")
	}
	return stepAfterGST, nil
}

func (s *service) RecordBasicInfo(ctx context.Context, sellerID uuid.UUID, input BasicInfoInput) (int, error) {
	updates := map[string]any{"current_step": stepAfterBasicInfo}

	setIfPresent(updates, "organization_email", input.OrganizationEmail)
	setIfPresent(updates, "primary_contact_name", input.PrimaryContactName)
	setIfPresent(updates, "primary_contact_phone", input.PrimaryContactPhone)
	setIfPresent(updates, "primary_contact_email", input.PrimaryContactEmail)
	setIfPresent(updates, "business_owner_name", input.BusinessOwnerName)
	setIfPresent(updates, "owner_contact_number", input.OwnerContactNumber)
	setIfPresent(updates, "owner_email_id", input.OwnerEmailID)
	setIfPresent(updates, "entity_type", input.EntityType)
	setIfPresent(updates, "tan_number", input.TANNumber)
	setIfPresent(updates, "signature_url", input.SignatureURL)
	setIfPresent(updates, "tan_document_url", input.TANDocumentURL)
	if input.IsExistingPartner != nil {
		updates["is_existing_partner"] = *input.IsExistingPartner
	}
	if input.MarketplaceInvoice != nil {
		updates["marketplace_invoice"] = *input.MarketplaceInvoice
	}
	if input.NeedsTDSBenefits != nil {
		updates["needs_tds_benefits"] = *input.NeedsTDSBenefits
	}

	// A password is set only when one is supplied; an existing hash is
	// never overwritten with a blank.
	if input.Password != nil && *input.Password != "" {
		hash, err := security.HashPassword(*input.Password)
		if err != nil {
			return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
		}
		updates["password_hash"] = hash
	}

	if err := s.repo.UpdateSeller(ctx, sellerID, updates); err != nil {
		return 0, mapSellerUpdateErr(err, "save basic information")
	}
	return stepAfterBasicInfo, nil
}

func (s *service) RecordBankDetails(ctx context.Context, sellerID uuid.UUID, input BankInput) (int, error) {
	updates := map[string]any{"current_step": stepAfterBank}
	setIfPresent(updates, "account_holder_name", input.AccountHolderName)
	setIfPresent(updates, "account_number", input.AccountNumber)
	setIfPresent(updates, "ifsc_code", input.IFSCCode)
	setIfPresent(updates, "bank_name", input.BankName)
	setIfPresent(updates, "account_type", input.AccountType)
	setIfPresent(updates, "cancelled_cheque_url", input.CancelledChequeURL)

	if err := s.repo.UpdateSeller(ctx, sellerID, updates); err != nil {
		return 0, mapSellerUpdateErr(err, "save bank details")
	}
	return stepAfterBank, nil
}

func (s *service) RecordBrandDetails(ctx context.Context, sellerID uuid.UUID, input BrandInput) (*BrandDTO, int, error) {
	if strings.TrimSpace(input.BrandName) == "" {
		return nil, 0, pkgerrors.New(pkgerrors.CodeValidation, "Brand name is required")
	}

	brand := &models.SellerBrand{
		SellerID:               sellerID,
		BrandName:              strings.TrimSpace(input.BrandName),
		BrandLogoURL:           input.BrandLogoURL,
		CatalogDetailsURL:      input.CatalogDetailsURL,
		NatureOfBusiness:       input.NatureOfBusiness,
		DocumentProofType:      input.DocumentProofType,
		DocumentProofURL:       input.DocumentProofURL,
		AverageMRP:             input.AverageMRP,
		AverageSellingPrice:    input.AverageSellingPrice,
		BrandCatalogWidth:      input.BrandCatalogWidth,
		AverageMonthlyTurnover: input.AverageMonthlyTurnover,
		OnlineBusinessPercent:  input.OnlineBusinessPercent,
		YearsOfOperation:       input.YearsOfOperation,
		BrandUSP:               input.BrandUSP,
		SustainabilityBadge:    input.SustainabilityBadge,
		PrimaryCategory:        input.PrimaryCategory,
		SecondaryCategory:      input.SecondaryCategory,
		ArticleType:            input.ArticleType,
		MasterCategory:         input.MasterCategory,
		Gender:                 input.Gender,
		MeasurementType:        input.MeasurementType,
		SellOnOtherPlatforms:   input.SellOnOtherPlatforms,
	}
	if err := s.repo.CreateBrand(ctx, brand); err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, 0, pkgerrors.New(pkgerrors.CodeNotFound, "Seller not found")
		}
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save brand details")
	}

	if err := s.repo.UpdateSeller(ctx, sellerID, map[string]any{"current_step": stepAfterBrand}); err != nil {
		return nil, 0, mapSellerUpdateErr(err, "advance onboarding step")
	}
	return toBrandDTO(brand), stepAfterBrand, nil
}

func (s *service) RecordWarehouse(ctx context.Context, sellerID uuid.UUID, input WarehouseInput) (*WarehouseDTO, error) {
	if input.Pincode == "" || input.City == "" || input.State == "" || input.FullAddress == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Pincode, city, state, and address are required")
	}

	wh := &models.Warehouse{
		SellerID:           sellerID,
		Pincode:            input.Pincode,
		GSTINDetails:       input.GSTINDetails,
		City:               input.City,
		State:              input.State,
		Country:            "India",
		FloorDetails:       input.FloorDetails,
		FullAddress:        input.FullAddress,
		OperatingStartTime: input.OperatingStartTime,
		OperatingEndTime:   input.OperatingEndTime,
		WarehouseEmail:     input.WarehouseEmail,
		WarehouseContact:   input.WarehouseContact,
		ProcessingCapacity: input.ProcessingCapacity,
	}
	if input.Country != nil && *input.Country != "" {
		wh.Country = *input.Country
	}

	if err := s.repo.CreateWarehouse(ctx, wh); err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Seller not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save warehouse")
	}

	if err := s.repo.UpdateSeller(ctx, sellerID, map[string]any{"current_step": stepAfterWarehouse}); err != nil {
		return nil, mapSellerUpdateErr(err, "advance onboarding step")
	}
	return toWarehouseDTO(wh), nil
}

// Status derives completeness from current row values on every call. It is
// never cached and does not consult current_step.
func (s *service) Status(ctx context.Context, sellerID uuid.UUID) (*StatusDTO, error) {
	seller, err := s.repo.FindSellerByID(ctx, sellerID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Seller not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load seller")
	}

	warehouseCount, err := s.repo.CountWarehouses(ctx, sellerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count warehouses")
	}
	brandCount, err := s.repo.CountBrands(ctx, sellerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count brands")
	}

	var pending []string
	if !hasValue(seller.GSTNumber) {
		pending = append(pending, partGSTINCheck)
	}
	if !hasValue(seller.LegalBusinessName) {
		pending = append(pending, partBasicInformation)
	}
	if warehouseCount == 0 {
		pending = append(pending, partWarehouseDetails)
	}
	if !seller.BankVerified && !hasValue(seller.PANNumber) {
		pending = append(pending, partBankDetails)
	}
	if brandCount == 0 {
		pending = append(pending, partBrandDetails)
	}

	if len(pending) == 0 {
		return &StatusDTO{IsComplete: true, Message: completionMessage}, nil
	}
	return &StatusDTO{IsComplete: false, PendingParts: pending}, nil
}

func mapSellerUpdateErr(err error, action string) error {
	switch {
	case db.IsNotFound(err):
		return pkgerrors.New(pkgerrors.CodeNotFound, "Seller not found")
	case db.IsUniqueViolation(err, ""):
		return pkgerrors.New(pkgerrors.CodeConflict, "GST or PAN already registered with another account")
	default:
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, action)
	}
}

func setIfPresent(updates map[string]any, column string, value *string) {
	if value != nil && *value != "" {
		updates[column] = *value
	}
}

func hasValue(s *string) bool {
	return s != nil && *s != ""
}
