package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemRow is one joined line of the seller's order listing.
type OrderItemRow struct {
	ItemID          uuid.UUID       `gorm:"column:item_id" json:"item_id"`
	OrderID         uuid.UUID       `gorm:"column:order_id" json:"order_id"`
	ProductID       uuid.UUID       `gorm:"column:product_id" json:"product_id"`
	ProductTitle    string          `gorm:"column:product_title" json:"product_title"`
	ProductHandle   string          `gorm:"column:product_handle" json:"product_handle"`
	Quantity        int             `gorm:"column:quantity" json:"quantity"`
	PriceAtPurchase decimal.Decimal `gorm:"column:price_at_purchase" json:"price_at_purchase"`
	ItemStatus      string          `gorm:"column:item_status" json:"item_status"`
	OrderStatus     string          `gorm:"column:order_status" json:"order_status"`
	OrderedAt       time.Time       `gorm:"column:ordered_at" json:"ordered_at"`
}

// TopProduct is one entry of the dashboard's best-seller list.
type TopProduct struct {
	ProductID uuid.UUID `gorm:"column:product_id" json:"product_id"`
	Title     string    `gorm:"column:title" json:"title"`
	UnitsSold int       `gorm:"column:units_sold" json:"units_sold"`
}

// LowStockProduct is one entry of the dashboard's replenishment list.
type LowStockProduct struct {
	ProductID         uuid.UUID `gorm:"column:product_id" json:"product_id"`
	Title             string    `gorm:"column:title" json:"title"`
	InventoryQuantity int       `gorm:"column:inventory_quantity" json:"inventory_quantity"`
}

// DashboardDTO composes the three seller aggregates.
type DashboardDTO struct {
	TotalRevenue decimal.Decimal   `json:"total_revenue"`
	TopProducts  []TopProduct      `json:"top_products"`
	LowStock     []LowStockProduct `json:"low_stock"`
}
