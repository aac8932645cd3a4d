package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatusActive is the default lifecycle status stamped on insert.
const ProductStatusActive = "active"

// Product is the catalog master record. Handle and SKU are globally unique;
// every product belongs to exactly one seller.
type Product struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Handle string    `gorm:"column:handle;not null;uniqueIndex:unique_handle"`
	SKU    string    `gorm:"column:sku;not null;uniqueIndex"`
	Title  string    `gorm:"column:title;not null"`
	Vendor *string   `gorm:"column:vendor"`

	CategoryID    uuid.UUID  `gorm:"column:category_id;type:uuid;not null"`
	SubcategoryID *uuid.UUID `gorm:"column:subcategory_id;type:uuid"`
	ProductTypeID *uuid.UUID `gorm:"column:product_type_id;type:uuid"`

	Price             decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null;default:0"`
	InventoryQuantity int             `gorm:"column:inventory_quantity;not null;default:0"`
	Status            string          `gorm:"column:status;not null;default:'active'"`
	ProductDetails    *string         `gorm:"column:product_details"`
	StyleNote         *string         `gorm:"column:style_note"`

	SellerID uuid.UUID `gorm:"column:seller_id;type:uuid;not null;index"`

	Variants []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images   []ProductImage   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Product) TableName() string { return "products" }
