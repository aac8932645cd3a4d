package bulkimport

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/shiprakart/seller-backend/pkg/db/models"
	pkgerrors "github.com/shiprakart/seller-backend/pkg/errors"
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

func beginTestTx(t *testing.T, conn *gorm.DB) *gorm.DB {
	t.Helper()
	tx := conn.Begin()
	if tx.Error != nil {
		t.Fatalf("begin tx: %v", tx.Error)
	}
	t.Cleanup(func() { tx.Rollback() })
	return tx
}

func mustCreateTestSeller(t *testing.T, tx *gorm.DB) *models.Seller {
	t.Helper()
	phone := fmt.Sprintf("9%s", uuid.NewString()[:9])
	seller := &models.Seller{PhoneNumber: &phone}
	if err := tx.Create(seller).Error; err != nil {
		t.Fatalf("create seller: %v", err)
	}
	return seller
}

func mustCreateTestCategory(t *testing.T, tx *gorm.DB) *models.Category {
	t.Helper()
	category := &models.Category{Name: fmt.Sprintf("cat-%s", uuid.NewString())}
	if err := tx.Create(category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	return category
}

// savepointRunner runs the import transaction nested inside the test's
// outer transaction, so a failed import rolls back to a savepoint and the
// test can still inspect the database state.
type savepointRunner struct{ tx *gorm.DB }

func (r savepointRunner) WithTx(_ context.Context, fn func(tx *gorm.DB) error) error {
	return r.tx.Transaction(fn)
}

func newDBTestService(t *testing.T, tx *gorm.DB) Service {
	t.Helper()
	svc, err := NewService(NewRepository(tx), savepointRunner{tx: tx})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestImportFileUpsertsByHandle(t *testing.T) {
	tx := beginTestTx(t, openTestDB(t))
	svc := newDBTestService(t, tx)

	seller := mustCreateTestSeller(t, tx)
	category := mustCreateTestCategory(t, tx)

	handle := fmt.Sprintf("tee-%s", uuid.NewString()[:8])
	sku := fmt.Sprintf("SKU-%s", uuid.NewString()[:8])
	imageURL := fmt.Sprintf("https://cdn.example/%s.jpg", handle)

	first := csvHeader + fmt.Sprintf("%s,Red Tee,Northline,%s,%s,499,12,M,Red,%s\n",
		handle, category.ID, sku, imageURL)
	count, err := svc.ImportFile(context.Background(), seller.ID, writeTempCSV(t, first))
	if err != nil {
		t.Fatalf("first import: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row imported, got %d", count)
	}

	second := csvHeader + fmt.Sprintf("%s,Red Tee v2,Northline,%s,%s,525,7,L,Red,%s\n",
		handle, category.ID, sku, imageURL)
	if _, err := svc.ImportFile(context.Background(), seller.ID, writeTempCSV(t, second)); err != nil {
		t.Fatalf("second import: %v", err)
	}

	var products []models.Product
	if err := tx.Where("handle = ?", handle).Find(&products).Error; err != nil {
		t.Fatalf("load products: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product after re-import, got %d", len(products))
	}
	if products[0].Title != "Red Tee v2" {
		t.Fatalf("expected refreshed title, got %q", products[0].Title)
	}
	if got := products[0].SKU; got != masterSKU(handle) {
		t.Fatalf("expected handle-derived master sku %q, got %q", masterSKU(handle), got)
	}

	var variants []models.ProductVariant
	if err := tx.Where("sku = ?", sku).Find(&variants).Error; err != nil {
		t.Fatalf("load variants: %v", err)
	}
	if len(variants) != 1 {
		t.Fatalf("expected 1 variant after re-import, got %d", len(variants))
	}
	variant := variants[0]
	if !variant.Price.Equal(decimal.NewFromInt(525)) {
		t.Fatalf("expected refreshed price 525, got %s", variant.Price)
	}
	if variant.InventoryQuantity != 7 {
		t.Fatalf("expected refreshed stock 7, got %d", variant.InventoryQuantity)
	}
	if variant.BrandSize == nil || *variant.BrandSize != "L" {
		t.Fatalf("expected brand size L, got %v", variant.BrandSize)
	}
	if variant.StandardSize == nil || *variant.StandardSize != "L" {
		t.Fatalf("expected standard size L, got %v", variant.StandardSize)
	}

	var images int64
	err = tx.Model(&models.ProductImage{}).
		Where("product_id = ? AND url = ? AND is_main = true", products[0].ID, imageURL).
		Count(&images).Error
	if err != nil {
		t.Fatalf("count images: %v", err)
	}
	if images != 1 {
		t.Fatalf("expected 1 main image after re-import, got %d", images)
	}
}

func TestImportFileRollsBackWholeFileOnConstraintViolation(t *testing.T) {
	tx := beginTestTx(t, openTestDB(t))
	svc := newDBTestService(t, tx)

	seller := mustCreateTestSeller(t, tx)
	category := mustCreateTestCategory(t, tx)

	goodHandle := fmt.Sprintf("tee-%s", uuid.NewString()[:8])
	badHandle := fmt.Sprintf("tee-%s", uuid.NewString()[:8])

	// An existing product already owns the master sku the second row would
	// derive, so that row fails outside the handle arbiter.
	existing := &models.Product{
		Handle:     fmt.Sprintf("handle-%s", uuid.NewString()[:8]),
		SKU:        masterSKU(badHandle),
		Title:      "Existing Product",
		CategoryID: category.ID,
		SellerID:   seller.ID,
		Status:     models.ProductStatusActive,
	}
	if err := tx.Create(existing).Error; err != nil {
		t.Fatalf("create existing product: %v", err)
	}

	content := csvHeader +
		fmt.Sprintf("%s,Good Row,V,%s,SKU-%s,100,1,M,Red,\n", goodHandle, category.ID, uuid.NewString()[:8]) +
		fmt.Sprintf("%s,Bad Row,V,%s,SKU-%s,100,1,M,Red,\n", badHandle, category.ID, uuid.NewString()[:8])

	_, err := svc.ImportFile(context.Background(), seller.ID, writeTempCSV(t, content))
	if !pkgerrors.IsCode(err, pkgerrors.CodeConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}

	var count int64
	if err := tx.Model(&models.Product{}).Where("handle IN ?", []string{goodHandle, badHandle}).Count(&count).Error; err != nil {
		t.Fatalf("count products: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no rows from the failed file, got %d", count)
	}
}
