package inventory

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

func seedProduct(t *testing.T, tx *gorm.DB, stock int) *models.Product {
	t.Helper()

	phone := fmt.Sprintf("9%s", uuid.NewString()[:9])
	seller := &models.Seller{PhoneNumber: &phone}
	if err := tx.Create(seller).Error; err != nil {
		t.Fatalf("create seller: %v", err)
	}
	category := &models.Category{Name: fmt.Sprintf("cat-%s", uuid.NewString())}
	if err := tx.Create(category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	product := &models.Product{
		Handle:            fmt.Sprintf("handle-%s", uuid.NewString()),
		SKU:               fmt.Sprintf("SKU-%s", uuid.NewString()),
		Title:             "Stock Test Product",
		CategoryID:        category.ID,
		SellerID:          seller.ID,
		InventoryQuantity: stock,
		Status:            models.ProductStatusActive,
	}
	if err := tx.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

func TestAdjustQuantityReturnsNewLevel(t *testing.T) {
	conn := openTestDB(t)
	tx := conn.Begin()
	if tx.Error != nil {
		t.Fatalf("begin tx: %v", tx.Error)
	}
	t.Cleanup(func() { tx.Rollback() })

	repo := NewRepository(tx)
	product := seedProduct(t, tx, 10)

	newStock, err := repo.AdjustQuantity(context.Background(), product.ID, -5)
	if err != nil {
		t.Fatalf("adjust quantity: %v", err)
	}
	if newStock != 5 {
		t.Fatalf("expected new stock 5, got %d", newStock)
	}
}

func TestAdjustQuantityMissingProduct(t *testing.T) {
	conn := openTestDB(t)
	tx := conn.Begin()
	if tx.Error != nil {
		t.Fatalf("begin tx: %v", tx.Error)
	}
	t.Cleanup(func() { tx.Rollback() })

	repo := NewRepository(tx)
	_, err := repo.AdjustQuantity(context.Background(), uuid.New(), 1)
	if err != gorm.ErrRecordNotFound {
		t.Fatalf("expected record not found, got %v", err)
	}
}
