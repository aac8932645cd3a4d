package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shiprakart/seller-backend/pkg/db/models"
)

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	Handle         string          `json:"handle" validate:"required"`
	SKU            string          `json:"sku" validate:"required"`
	Title          string          `json:"title" validate:"required"`
	Vendor         *string         `json:"vendor,omitempty"`
	CategoryID     uuid.UUID       `json:"category_id" validate:"required"`
	SubcategoryID  *uuid.UUID      `json:"subcategory_id,omitempty"`
	ProductTypeID  *uuid.UUID      `json:"product_type_id,omitempty"`
	Price          decimal.Decimal `json:"price"`
	Stock          int             `json:"stock" validate:"min=0"`
	ProductDetails *string         `json:"product_details,omitempty"`
	StyleNote      *string         `json:"style_note,omitempty"`
}

// VariantInput is one row of a variant batch. Color and size feed both the
// option-value pair and the size/colour columns.
type VariantInput struct {
	SKU                 string          `json:"sku" validate:"required"`
	Price               decimal.Decimal `json:"price"`
	Color               *string         `json:"color,omitempty"`
	Size                *string         `json:"size,omitempty"`
	Stock               int             `json:"stock" validate:"min=0"`
	BrandSize           *string         `json:"brand_size,omitempty"`
	StandardSize        *string         `json:"standard_size,omitempty"`
	GTIN                *string         `json:"gtin,omitempty"`
	HSN                 *string         `json:"hsn,omitempty"`
	ProminentColour     *string         `json:"prominent_colour,omitempty"`
	Option1Name         *string         `json:"option1_name,omitempty"`
	Option2Name         *string         `json:"option2_name,omitempty"`
	ColorVariantGroupID *string         `json:"color_variant_group_id,omitempty"`
}

// ProductDTO is the stored product returned to sellers.
type ProductDTO struct {
	ID                uuid.UUID       `json:"id"`
	Handle            string          `json:"handle"`
	SKU               string          `json:"sku"`
	Title             string          `json:"title"`
	Vendor            *string         `json:"vendor,omitempty"`
	CategoryID        uuid.UUID       `json:"category_id"`
	SubcategoryID     *uuid.UUID      `json:"subcategory_id,omitempty"`
	ProductTypeID     *uuid.UUID      `json:"product_type_id,omitempty"`
	Price             decimal.Decimal `json:"price"`
	InventoryQuantity int             `json:"inventory_quantity"`
	Status            string          `json:"status"`
	ProductDetails    *string         `json:"product_details,omitempty"`
	StyleNote         *string         `json:"style_note,omitempty"`
	SellerID          uuid.UUID       `json:"seller_id"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// VariantDTO is one stored variant row.
type VariantDTO struct {
	ID                  uuid.UUID       `json:"id"`
	ProductID           uuid.UUID       `json:"product_id"`
	SKU                 string          `json:"sku"`
	Price               decimal.Decimal `json:"price"`
	Option1Name         string          `json:"option1_name"`
	Option1Value        *string         `json:"option1_value,omitempty"`
	Option2Name         string          `json:"option2_name"`
	Option2Value        *string         `json:"option2_value,omitempty"`
	InventoryQuantity   int             `json:"inventory_quantity"`
	BrandSize           *string         `json:"brand_size,omitempty"`
	StandardSize        *string         `json:"standard_size,omitempty"`
	GTIN                *string         `json:"gtin,omitempty"`
	HSN                 *string         `json:"hsn,omitempty"`
	ProminentColour     *string         `json:"prominent_colour,omitempty"`
	ColorVariantGroupID *string         `json:"color_variant_group_id,omitempty"`
}

// ImageDTO is one stored gallery entry.
type ImageDTO struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	URL       string    `json:"url"`
	AltText   *string   `json:"alt_text,omitempty"`
	IsMain    bool      `json:"is_main"`
	SortOrder int       `json:"sort_order"`
}

// ProductDetailDTO is the public storefront read: product plus variants and
// images, images ordered by sort_order.
type ProductDetailDTO struct {
	ProductDTO
	Variants []VariantDTO `json:"variants"`
	Images   []ImageDTO   `json:"images"`
}

func toProductDTO(p *models.Product) *ProductDTO {
	return &ProductDTO{
		ID:                p.ID,
		Handle:            p.Handle,
		SKU:               p.SKU,
		Title:             p.Title,
		Vendor:            p.Vendor,
		CategoryID:        p.CategoryID,
		SubcategoryID:     p.SubcategoryID,
		ProductTypeID:     p.ProductTypeID,
		Price:             p.Price,
		InventoryQuantity: p.InventoryQuantity,
		Status:            p.Status,
		ProductDetails:    p.ProductDetails,
		StyleNote:         p.StyleNote,
		SellerID:          p.SellerID,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toVariantDTO(v *models.ProductVariant) VariantDTO {
	return VariantDTO{
		ID:                  v.ID,
		ProductID:           v.ProductID,
		SKU:                 v.SKU,
		Price:               v.Price,
		Option1Name:         v.Option1Name,
		Option1Value:        v.Option1Value,
		Option2Name:         v.Option2Name,
		Option2Value:        v.Option2Value,
		InventoryQuantity:   v.InventoryQuantity,
		BrandSize:           v.BrandSize,
		StandardSize:        v.StandardSize,
		GTIN:                v.GTIN,
		HSN:                 v.HSN,
		ProminentColour:     v.ProminentColour,
		ColorVariantGroupID: v.ColorVariantGroupID,
	}
}

func toImageDTO(img *models.ProductImage) ImageDTO {
	return ImageDTO{
		ID:        img.ID,
		ProductID: img.ProductID,
		URL:       img.URL,
		AltText:   img.AltText,
		IsMain:    img.IsMain,
		SortOrder: img.SortOrder,
	}
}

func toProductDetailDTO(p *models.Product) *ProductDetailDTO {
	detail := &ProductDetailDTO{
		ProductDTO: *toProductDTO(p),
		Variants:   make([]VariantDTO, 0, len(p.Variants)),
		Images:     make([]ImageDTO, 0, len(p.Images)),
	}
	for i := range p.Variants {
		detail.Variants = append(detail.Variants, toVariantDTO(&p.Variants[i]))
	}
	for i := range p.Images {
		detail.Images = append(detail.Images, toImageDTO(&p.Images[i]))
	}
	return detail
}
