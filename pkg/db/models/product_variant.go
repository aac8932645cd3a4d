package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductVariant is one sellable size/color combination of a product. SKU and
// GTIN are unique across all variants.
type ProductVariant struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null;index"`

	SKU   string          `gorm:"column:sku;not null;uniqueIndex:unique_sku"`
	Price decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null;default:0"`

	Option1Name  string  `gorm:"column:option1_name;not null;default:'Color'"`
	Option1Value *string `gorm:"column:option1_value"`
	Option2Name  string  `gorm:"column:option2_name;not null;default:'Size'"`
	Option2Value *string `gorm:"column:option2_value"`

	InventoryQuantity int `gorm:"column:inventory_quantity;not null;default:0"`

	BrandSize    *string `gorm:"column:brand_size"`
	StandardSize *string `gorm:"column:standard_size"`

	GTIN *string `gorm:"column:gtin;uniqueIndex"`
	HSN  *string `gorm:"column:hsn"`

	ProminentColour *string `gorm:"column:prominent_colour"`

	// ColorVariantGroupID groups sibling variants sharing a color across sizes.
	ColorVariantGroupID *string `gorm:"column:color_variant_group_id"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (ProductVariant) TableName() string { return "product_variants" }
