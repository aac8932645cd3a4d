package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shiprakart/seller-backend/pkg/db/models"
)

// Repository handles product, variant, and image persistence.
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

func (r *Repository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// FindOwnerID loads only the product's owner column.
func (r *Repository) FindOwnerID(ctx context.Context, productID uuid.UUID) (uuid.UUID, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Select("id", "seller_id").
		First(&product, "id = ?", productID).Error
	if err != nil {
		return uuid.Nil, err
	}
	return product.SellerID, nil
}

// FindByHandle loads the product with its variants and its images ordered
// by sort_order.
func (r *Repository) FindByHandle(ctx context.Context, handle string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Variants").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&product, "handle = ?", handle).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteScoped removes the product only when it belongs to the seller. The
// single statement doubles as the existence and ownership check; zero rows
// affected means missing or not owned.
func (r *Repository) DeleteScoped(ctx context.Context, productID, sellerID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND seller_id = ?", productID, sellerID).
		Delete(&models.Product{})
	return res.RowsAffected, res.Error
}

// ClearMainImages unsets is_main on every image of the product.
func (r *Repository) ClearMainImages(ctx context.Context, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.ProductImage{}).
		Where("product_id = ?", productID).
		Update("is_main", false).Error
}

func (r *Repository) CreateImage(ctx context.Context, image *models.ProductImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *Repository) CreateVariants(ctx context.Context, variants []models.ProductVariant) error {
	if len(variants) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&variants).Error
}
