package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductImage is one gallery entry for a product. At most one row per product
// carries IsMain; SortOrder defines display order, zero-based per upload batch.
type ProductImage struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null;uniqueIndex:unique_product_image_url"`
	URL       string    `gorm:"column:url;not null;uniqueIndex:unique_product_image_url"`
	AltText   *string   `gorm:"column:alt_text"`
	IsMain    bool      `gorm:"column:is_main;not null;default:false"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ProductImage) TableName() string { return "product_images" }
