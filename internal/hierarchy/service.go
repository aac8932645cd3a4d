package hierarchy

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	pkgerrors "github.com/shiprakart/seller-backend/pkg/errors"
)

// TreeRow is one flat row of the category/subcategory/type join. Subcategory
// and type columns are null for branches without children.
type TreeRow struct {
	CategoryID      uuid.UUID  `json:"category_id"`
	CategoryName    string     `json:"category_name"`
	SubcategoryID   *uuid.UUID `json:"subcategory_id"`
	SubcategoryName *string    `json:"subcategory_name"`
	ProductTypeID   *uuid.UUID `json:"product_type_id"`
	ProductTypeName *string    `json:"product_type_name"`
}

// ProductTypeDTO is a single leaf of the hierarchy.
type ProductTypeDTO struct {
	ID            uuid.UUID `json:"id"`
	SubcategoryID uuid.UUID `json:"subcategory_id"`
	Name          string    `json:"name"`
}

// Service exposes the read-only category navigation.
type Service interface {
	Tree(ctx context.Context) ([]TreeRow, error)
	TypesBySubcategory(ctx context.Context, subcategoryID uuid.UUID) ([]ProductTypeDTO, error)
}

type service struct {
	repo *Repository
}

func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("hierarchy repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Tree(ctx context.Context) ([]TreeRow, error) {
	rows, err := s.repo.Tree(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load category tree")
	}
	if rows == nil {
		rows = []TreeRow{}
	}
	return rows, nil
}

func (s *service) TypesBySubcategory(ctx context.Context, subcategoryID uuid.UUID) ([]ProductTypeDTO, error) {
	types, err := s.repo.TypesBySubcategory(ctx, subcategoryID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product types")
	}
	out := make([]ProductTypeDTO, 0, len(types))
	for _, pt := range types {
		out = append(out, ProductTypeDTO{ID: pt.ID, SubcategoryID: pt.SubcategoryID, Name: pt.Name})
	}
	return out, nil
}
