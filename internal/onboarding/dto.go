package onboarding

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shiprakart/seller-backend/pkg/db/models"
)

// GSTInput carries the tax identity section.
type GSTInput struct {
	GSTNumber string
	PANNumber string
	HasGST    bool
}

// BasicInfoInput carries the business information section. File URLs are
// already uploaded by the object store before the service runs.
type BasicInfoInput struct {
	OrganizationEmail   *string
	PrimaryContactName  *string
	PrimaryContactPhone *string
	PrimaryContactEmail *string
	BusinessOwnerName   *string
	OwnerContactNumber  *string
	OwnerEmailID        *string
	IsExistingPartner   *bool
	EntityType          *string
	MarketplaceInvoice  *bool
	NeedsTDSBenefits    *bool
	TANNumber           *string
	Password            *string
	SignatureURL        *string
	TANDocumentURL      *string
}

// BankInput carries the settlement account section.
type BankInput struct {
	AccountHolderName  *string
	AccountNumber      *string
	IFSCCode           *string
	BankName           *string
	AccountType        *string
	CancelledChequeURL *string
}

// BrandInput carries one brand declaration.
type BrandInput struct {
	BrandName              string
	BrandLogoURL           *string
	CatalogDetailsURL      *string
	NatureOfBusiness       *string
	DocumentProofType      *string
	DocumentProofURL       *string
	AverageMRP             decimal.Decimal
	AverageSellingPrice    decimal.Decimal
	BrandCatalogWidth      int
	AverageMonthlyTurnover decimal.Decimal
	OnlineBusinessPercent  int
	YearsOfOperation       int
	BrandUSP               *string
	SustainabilityBadge    bool
	PrimaryCategory        *string
	SecondaryCategory      *string
	ArticleType            *string
	MasterCategory         *string
	Gender                 *string
	MeasurementType        *string
	SellOnOtherPlatforms   bool
}

// WarehouseInput carries one fulfillment location.
type WarehouseInput struct {
	Pincode            string
	GSTINDetails       *string
	City               string
	State              string
	Country            *string
	FloorDetails       *string
	FullAddress        string
	OperatingStartTime *string
	OperatingEndTime   *string
	WarehouseEmail     *string
	WarehouseContact   *string
	ProcessingCapacity int
}

// BrandDTO is the stored brand row returned after the brand step.
type BrandDTO struct {
	ID        uuid.UUID `json:"id"`
	SellerID  uuid.UUID `json:"seller_id"`
	BrandName string    `json:"brand_name"`
	CreatedAt time.Time `json:"created_at"`
}

// WarehouseDTO is the stored warehouse row returned after the warehouse step.
type WarehouseDTO struct {
	ID          uuid.UUID `json:"id"`
	SellerID    uuid.UUID `json:"seller_id"`
	Pincode     string    `json:"pincode"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	FullAddress string    `json:"full_address"`
	CreatedAt   time.Time `json:"created_at"`
}

// StatusDTO is the derived completeness report.
type StatusDTO struct {
	IsComplete   bool     `json:"isComplete"`
	Message      string   `json:"message,omitempty"`
	PendingParts []string `json:"pendingParts,omitempty"`
}

func toBrandDTO(brand *models.SellerBrand) *BrandDTO {
	return &BrandDTO{
		ID:        brand.ID,
		SellerID:  brand.SellerID,
		BrandName: brand.BrandName,
		CreatedAt: brand.CreatedAt,
	}
}

func toWarehouseDTO(wh *models.Warehouse) *WarehouseDTO {
	return &WarehouseDTO{
		ID:          wh.ID,
		SellerID:    wh.SellerID,
		Pincode:     wh.Pincode,
		City:        wh.City,
		State:       wh.State,
		Country:     wh.Country,
		FullAddress: wh.FullAddress,
		CreatedAt:   wh.CreatedAt,
	}
}
