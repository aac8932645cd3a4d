package models

import "github.com/google/uuid"

// Category, Subcategory, and ProductType form the read-only three-level
// navigation tree. Rows are seeded by migrations and never mutated at runtime.

type Category struct {
	ID   uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name string    `gorm:"column:name;not null;uniqueIndex"`
}

func (Category) TableName() string { return "categories" }

type Subcategory struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CategoryID uuid.UUID `gorm:"column:category_id;type:uuid;not null;index"`
	Name       string    `gorm:"column:name;not null"`
}

func (Subcategory) TableName() string { return "subcategories" }

type ProductType struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SubcategoryID uuid.UUID `gorm:"column:subcategory_id;type:uuid;not null;index"`
	Name          string    `gorm:"column:name;not null"`
}

func (ProductType) TableName() string { return "product_types" }
