package bulkimport

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shiprakart/seller-backend/pkg/db/models"
)

// Repository performs the per-row upserts of the import pipeline. All
// methods are expected to run inside the file-level transaction.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// buildProductRow maps a CSV row onto the master product. The master SKU is
// derived from the handle rather than the row's variant SKU, so it stays
// functionally dependent on the upsert's arbiter column.
func buildProductRow(sellerID uuid.UUID, row Row) models.Product {
	vendor := row.Vendor
	return models.Product{
		Handle:            row.Handle,
		SKU:               masterSKU(row.Handle),
		Title:             row.Title,
		Vendor:            &vendor,
		CategoryID:        row.CategoryID,
		Price:             row.Price,
		InventoryQuantity: row.Stock,
		Status:            models.ProductStatusActive,
		SellerID:          sellerID,
	}
}

func masterSKU(handle string) string {
	return strings.ToUpper(handle)
}

// UpsertProduct inserts the product or, on a handle collision, refreshes
// title and vendor in place. The stored row id is returned either way.
func (r *Repository) UpsertProduct(ctx context.Context, sellerID uuid.UUID, row Row) (uuid.UUID, error) {
	product := buildProductRow(sellerID, row)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			OnConstraint: "unique_handle",
			DoUpdates:    clause.AssignmentColumns([]string{"title", "vendor", "updated_at"}),
		}, clause.Returning{Columns: []clause.Column{{Name: "id"}}}).
		Create(&product).Error
	if err != nil {
		return uuid.Nil, err
	}
	return product.ID, nil
}

// buildVariantRow maps a CSV row onto a variant. The file carries a single
// size column, so it fills both the brand and standard size.
func buildVariantRow(productID uuid.UUID, row Row) models.ProductVariant {
	variant := models.ProductVariant{
		ProductID:         productID,
		SKU:               row.SKU,
		Price:             row.Price,
		Option1Name:       "Color",
		Option2Name:       "Size",
		InventoryQuantity: row.Stock,
	}
	if row.Color != "" {
		color := row.Color
		variant.Option1Value = &color
		variant.ProminentColour = &color
	}
	if row.Size != "" {
		size := row.Size
		variant.Option2Value = &size
		variant.BrandSize = &size
		variant.StandardSize = &size
	}
	groupID := fmt.Sprintf("GRP-%s-%s", productID, row.Color)
	variant.ColorVariantGroupID = &groupID
	return variant
}

// UpsertVariant inserts the variant or, on a SKU collision, refreshes
// price, stock, and the size/colour columns.
func (r *Repository) UpsertVariant(ctx context.Context, productID uuid.UUID, row Row) error {
	variant := buildVariantRow(productID, row)

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			OnConstraint: "unique_sku",
			DoUpdates:    clause.AssignmentColumns([]string{"price", "inventory_quantity", "brand_size", "standard_size", "prominent_colour", "updated_at"}),
		}).
		Create(&variant).Error
}

// InsertImage records the row's image as the product main, skipping the
// insert when the same URL is already attached.
func (r *Repository) InsertImage(ctx context.Context, productID uuid.UUID, url string) error {
	image := models.ProductImage{
		ProductID: productID,
		URL:       url,
		IsMain:    true,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&image).Error
}
