package models

import (
	"time"

	"github.com/google/uuid"
)

// Warehouse is a fulfillment location. At least one row is an onboarding
// completeness signal.
type Warehouse struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SellerID uuid.UUID `gorm:"column:seller_id;type:uuid;not null;index"`

	Pincode            string  `gorm:"column:pincode;not null"`
	GSTINDetails       *string `gorm:"column:gstin_details"`
	City               string  `gorm:"column:city;not null"`
	State              string  `gorm:"column:state;not null"`
	Country            string  `gorm:"column:country;not null;default:'India'"`
	FloorDetails       *string `gorm:"column:floor_details"`
	FullAddress        string  `gorm:"column:full_address;not null"`
	OperatingStartTime *string `gorm:"column:operating_start_time"`
	OperatingEndTime   *string `gorm:"column:operating_end_time"`
	WarehouseEmail     *string `gorm:"column:warehouse_email"`
	WarehouseContact   *string `gorm:"column:warehouse_contact"`
	ProcessingCapacity int     `gorm:"column:processing_capacity;not null;default:0"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Warehouse) TableName() string { return "warehouses" }
