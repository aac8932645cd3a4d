package inventory

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shiprakart/seller-backend/pkg/db/models"
)

const adjustQuery = `
UPDATE products
SET inventory_quantity = inventory_quantity + ?, updated_at = now()
WHERE id = ?
RETURNING inventory_quantity
`

// Repository handles stock mutation and its audit trail.
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

// AdjustQuantity applies the signed delta and returns the resulting level.
// A missing product surfaces as gorm.ErrRecordNotFound.
func (r *Repository) AdjustQuantity(ctx context.Context, productID uuid.UUID, amount int) (int, error) {
	var newStock int
	res := r.db.WithContext(ctx).Raw(adjustQuery, amount, productID).Scan(&newStock)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return newStock, nil
}

func (r *Repository) AppendLog(ctx context.Context, log *models.StockLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}
