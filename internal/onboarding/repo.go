package onboarding

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shiprakart/seller-backend/pkg/db/models"
)

// Repository handles onboarding persistence across sellers, brands, and
// warehouses.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindSellerByID(ctx context.Context, sellerID uuid.UUID) (*models.Seller, error) {
	var seller models.Seller
	if err := r.db.WithContext(ctx).First(&seller, "id = ?", sellerID).Error; err != nil {
		return nil, err
	}
	return &seller, nil
}

// UpdateSeller applies a section's column updates. A zero rows-affected
// result maps to gorm.ErrRecordNotFound so callers see a missing seller
// the same way reads do.
func (r *Repository) UpdateSeller(ctx context.Context, sellerID uuid.UUID, updates map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&models.Seller{}).
		Where("id = ?", sellerID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) CreateBrand(ctx context.Context, brand *models.SellerBrand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

func (r *Repository) CreateWarehouse(ctx context.Context, wh *models.Warehouse) error {
	return r.db.WithContext(ctx).Create(wh).Error
}

func (r *Repository) CountBrands(ctx context.Context, sellerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SellerBrand{}).
		Where("seller_id = ?", sellerID).
		Count(&count).Error
	return count, err
}

func (r *Repository) CountWarehouses(ctx context.Context, sellerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Warehouse{}).
		Where("seller_id = ?", sellerID).
		Count(&count).Error
	return count, err
}
