package hierarchy

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shiprakart/seller-backend/pkg/db/models"
)

const treeQuery = `
SELECT c.id   AS category_id,
       c.name AS category_name,
       s.id   AS subcategory_id,
       s.name AS subcategory_name,
       t.id   AS product_type_id,
       t.name AS product_type_name
FROM categories c
LEFT JOIN subcategories s ON s.category_id = c.id
LEFT JOIN product_types t ON t.subcategory_id = s.id
ORDER BY c.name, s.name, t.name
`

// Repository reads the fixed category navigation tree.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Tree returns the full hierarchy as flat joined rows; the client composes
// the tree shape.
func (r *Repository) Tree(ctx context.Context) ([]TreeRow, error) {
	var rows []TreeRow
	if err := r.db.WithContext(ctx).Raw(treeQuery).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// TypesBySubcategory lists product types under one subcategory.
func (r *Repository) TypesBySubcategory(ctx context.Context, subcategoryID uuid.UUID) ([]models.ProductType, error) {
	var types []models.ProductType
	err := r.db.WithContext(ctx).
		Where("subcategory_id = ?", subcategoryID).
		Order("name").
		Find(&types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}
