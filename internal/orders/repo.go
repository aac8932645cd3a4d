package orders

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shiprakart/seller-backend/pkg/db/models"
)

const listItemsQuery = `
SELECT oi.id          AS item_id,
       oi.order_id    AS order_id,
       oi.product_id  AS product_id,
       p.title        AS product_title,
       p.handle       AS product_handle,
       oi.quantity    AS quantity,
       oi.price_at_purchase,
       oi.status      AS item_status,
       o.status       AS order_status,
       o.created_at   AS ordered_at
FROM order_items oi
JOIN products p ON p.id = oi.product_id
JOIN orders o   ON o.id = oi.order_id
WHERE p.seller_id = ?
ORDER BY o.created_at DESC
`

const totalRevenueQuery = `
SELECT COALESCE(SUM(oi.quantity * oi.price_at_purchase), 0)
FROM order_items oi
JOIN products p ON p.id = oi.product_id
WHERE p.seller_id = ?
`

const topProductsQuery = `
SELECT p.id AS product_id,
       p.title,
       SUM(oi.quantity)::int AS units_sold
FROM order_items oi
JOIN products p ON p.id = oi.product_id
WHERE p.seller_id = ?
GROUP BY p.id, p.title
ORDER BY units_sold DESC
LIMIT ?
`

const lowStockQuery = `
SELECT id AS product_id, title, inventory_quantity
FROM products
WHERE seller_id = ? AND inventory_quantity < ?
ORDER BY inventory_quantity ASC
`

// Repository reads order data and updates line item status.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListSellerItems joins order items to the seller's products, newest order
// first.
func (r *Repository) ListSellerItems(ctx context.Context, sellerID uuid.UUID) ([]OrderItemRow, error) {
	var rows []OrderItemRow
	if err := r.db.WithContext(ctx).Raw(listItemsQuery, sellerID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindItemOwner resolves the seller owning the product behind an item.
func (r *Repository) FindItemOwner(ctx context.Context, itemID uuid.UUID) (uuid.UUID, error) {
	var ownerID uuid.UUID
	res := r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Select("products.seller_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.id = ?", itemID).
		Scan(&ownerID)
	if res.Error != nil {
		return uuid.Nil, res.Error
	}
	if res.RowsAffected == 0 {
		return uuid.Nil, gorm.ErrRecordNotFound
	}
	return ownerID, nil
}

func (r *Repository) UpdateItemStatus(ctx context.Context, itemID uuid.UUID, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Where("id = ?", itemID).
		Update("status", status).Error
}

func (r *Repository) TotalRevenue(ctx context.Context, sellerID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Raw(totalRevenueQuery, sellerID).Scan(&total).Error
	return total, err
}

func (r *Repository) TopProducts(ctx context.Context, sellerID uuid.UUID, limit int) ([]TopProduct, error) {
	var rows []TopProduct
	if err := r.db.WithContext(ctx).Raw(topProductsQuery, sellerID, limit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) LowStock(ctx context.Context, sellerID uuid.UUID, threshold int) ([]LowStockProduct, error) {
	var rows []LowStockProduct
	if err := r.db.WithContext(ctx).Raw(lowStockQuery, sellerID, threshold).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
