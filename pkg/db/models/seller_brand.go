package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SellerBrand is one brand declaration submitted during onboarding. A seller
// may submit several over time; rows are inserted, never updated in place.
type SellerBrand struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SellerID uuid.UUID `gorm:"column:seller_id;type:uuid;not null;index"`

	BrandName         string  `gorm:"column:brand_name;not null"`
	BrandLogoURL      *string `gorm:"column:brand_logo_url"`
	CatalogDetailsURL *string `gorm:"column:catalog_details_url"`
	NatureOfBusiness  *string `gorm:"column:nature_of_business"`
	DocumentProofType *string `gorm:"column:document_proof_type"`
	DocumentProofURL  *string `gorm:"column:document_proof_url"`

	AverageMRP             decimal.Decimal `gorm:"column:average_mrp;type:numeric(12,2);not null;default:0"`
	AverageSellingPrice    decimal.Decimal `gorm:"column:average_selling_price;type:numeric(12,2);not null;default:0"`
	BrandCatalogWidth      int             `gorm:"column:brand_catalog_width;not null;default:0"`
	AverageMonthlyTurnover decimal.Decimal `gorm:"column:average_monthly_turnover;type:numeric(14,2);not null;default:0"`
	OnlineBusinessPercent  int             `gorm:"column:online_business_percent;not null;default:0"`
	YearsOfOperation       int             `gorm:"column:years_of_operation;not null;default:0"`

	BrandUSP             *string `gorm:"column:brand_usp"`
	SustainabilityBadge  bool    `gorm:"column:sustainability_badge;not null;default:false"`
	PrimaryCategory      *string `gorm:"column:primary_category"`
	SecondaryCategory    *string `gorm:"column:secondary_category"`
	ArticleType          *string `gorm:"column:article_type"`
	MasterCategory       *string `gorm:"column:master_category"`
	Gender               *string `gorm:"column:gender"`
	MeasurementType      *string `gorm:"column:measurement_type"`
	SellOnOtherPlatforms bool    `gorm:"column:sell_on_other_platforms;not null;default:false"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (SellerBrand) TableName() string { return "seller_brands" }
