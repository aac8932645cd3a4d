package hierarchy

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/shiprakart/seller-backend/pkg/db/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("SHIPRA_DB_DSN")
	if dsn == "" {
		t.Skip("SHIPRA_DB_DSN is not set")
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	return conn
}

func seedBranch(t *testing.T, tx *gorm.DB) (*models.Category, *models.Subcategory, *models.ProductType) {
	t.Helper()

	category := &models.Category{Name: fmt.Sprintf("cat-%s", uuid.NewString())}
	if err := tx.Create(category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	sub := &models.Subcategory{CategoryID: category.ID, Name: fmt.Sprintf("sub-%s", uuid.NewString())}
	if err := tx.Create(sub).Error; err != nil {
		t.Fatalf("create subcategory: %v", err)
	}
	pt := &models.ProductType{SubcategoryID: sub.ID, Name: fmt.Sprintf("type-%s", uuid.NewString())}
	if err := tx.Create(pt).Error; err != nil {
		t.Fatalf("create product type: %v", err)
	}
	return category, sub, pt
}

func TestTreeIncludesSeededBranch(t *testing.T) {
	conn := openTestDB(t)
	tx := conn.Begin()
	if tx.Error != nil {
		t.Fatalf("begin tx: %v", tx.Error)
	}
	t.Cleanup(func() { tx.Rollback() })

	repo := NewRepository(tx)
	category, sub, pt := seedBranch(t, tx)

	rows, err := repo.Tree(context.Background())
	if err != nil {
		t.Fatalf("load tree: %v", err)
	}

	found := false
	for _, row := range rows {
		if row.CategoryID != category.ID {
			continue
		}
		if row.SubcategoryID == nil || *row.SubcategoryID != sub.ID {
			continue
		}
		if row.ProductTypeID != nil && *row.ProductTypeID == pt.ID {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("seeded branch missing from tree rows")
	}
}

func TestTypesBySubcategoryScopes(t *testing.T) {
	conn := openTestDB(t)
	tx := conn.Begin()
	if tx.Error != nil {
		t.Fatalf("begin tx: %v", tx.Error)
	}
	t.Cleanup(func() { tx.Rollback() })

	repo := NewRepository(tx)
	_, sub, pt := seedBranch(t, tx)
	_, otherSub, _ := seedBranch(t, tx)

	types, err := repo.TypesBySubcategory(context.Background(), sub.ID)
	if err != nil {
		t.Fatalf("load types: %v", err)
	}
	if len(types) != 1 || types[0].ID != pt.ID {
		t.Fatalf("expected exactly the seeded type, got %d rows", len(types))
	}

	other, err := repo.TypesBySubcategory(context.Background(), otherSub.ID)
	if err != nil {
		t.Fatalf("load other types: %v", err)
	}
	if len(other) != 1 {
		t.Fatalf("expected one type under other subcategory, got %d", len(other))
	}
}
