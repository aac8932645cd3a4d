package models

import (
	"time"

	"github.com/google/uuid"
)

// StockLog is an append-only audit row recorded alongside every inventory
// adjustment. Rows are never updated or deleted.
type StockLog struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID     uuid.UUID `gorm:"column:product_id;type:uuid;not null;index"`
	ChangeAmount  int       `gorm:"column:change_amount;not null"`
	NewStockLevel int       `gorm:"column:new_stock_level;not null"`
	Reason        string    `gorm:"column:reason;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (StockLog) TableName() string { return "stock_logs" }
