package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order item statuses. Any item may move to any of the three; there is no
// enforced ordering between them.
const (
	OrderItemStatusPending   = "PENDING"
	OrderItemStatusShipped   = "SHIPPED"
	OrderItemStatusDelivered = "DELIVERED"
)

// ValidOrderItemStatus reports whether status is one of the allowed values.
func ValidOrderItemStatus(status string) bool {
	switch status {
	case OrderItemStatusPending, OrderItemStatusShipped, OrderItemStatusDelivered:
		return true
	}
	return false
}

// Order is a buyer order placed against the catalog. This service only reads
// orders; creation happens upstream.
type Order struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Status    string    `gorm:"column:status;not null;default:'PENDING'"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Order) TableName() string { return "orders" }

// OrderItem is one line of an order, independently updatable per line.
type OrderItem struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID         uuid.UUID       `gorm:"column:order_id;type:uuid;not null;index"`
	ProductID       uuid.UUID       `gorm:"column:product_id;type:uuid;not null;index"`
	Quantity        int             `gorm:"column:quantity;not null"`
	PriceAtPurchase decimal.Decimal `gorm:"column:price_at_purchase;type:numeric(10,2);not null"`
	Status          string          `gorm:"column:status;not null;default:'PENDING'"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (OrderItem) TableName() string { return "order_items" }
