package catalog

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
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

func mustCreateTestProduct(t *testing.T, tx *gorm.DB, sellerID uuid.UUID) *models.Product {
	t.Helper()
	product := &models.Product{
		Handle:     fmt.Sprintf("handle-%s", uuid.NewString()),
		SKU:        fmt.Sprintf("SKU-%s", uuid.NewString()),
		Title:      "Test Product",
		CategoryID: mustCreateTestCategory(t, tx).ID,
		SellerID:   sellerID,
		Status:     models.ProductStatusActive,
	}
	if err := tx.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

func TestDeleteScopedRequiresOwnership(t *testing.T) {
	tx := beginTestTx(t, openTestDB(t))
	repo := NewRepository(tx)

	owner := mustCreateTestSeller(t, tx)
	other := mustCreateTestSeller(t, tx)
	product := mustCreateTestProduct(t, tx, owner.ID)

	affected, err := repo.DeleteScoped(context.Background(), product.ID, other.ID)
	if err != nil {
		t.Fatalf("delete scoped: %v", err)
	}
	if affected != 0 {
		t.Fatalf("expected 0 rows for non-owner, got %d", affected)
	}

	affected, err = repo.DeleteScoped(context.Background(), product.ID, owner.ID)
	if err != nil {
		t.Fatalf("delete scoped: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 row for owner, got %d", affected)
	}
}

func TestFindByHandleLoadsChildrenOrdered(t *testing.T) {
	tx := beginTestTx(t, openTestDB(t))
	repo := NewRepository(tx)

	seller := mustCreateTestSeller(t, tx)
	product := mustCreateTestProduct(t, tx, seller.ID)

	for i := 2; i >= 0; i-- {
		img := &models.ProductImage{
			ProductID: product.ID,
			URL:       fmt.Sprintf("https://cdn.example/%s-%d.jpg", product.ID, i),
			SortOrder: i,
			IsMain:    i == 0,
		}
		if err := tx.Create(img).Error; err != nil {
			t.Fatalf("create image: %v", err)
		}
	}

	got, err := repo.FindByHandle(context.Background(), product.Handle)
	if err != nil {
		t.Fatalf("find by handle: %v", err)
	}
	if len(got.Images) != 3 {
		t.Fatalf("expected 3 images, got %d", len(got.Images))
	}
	for i, img := range got.Images {
		if img.SortOrder != i {
			t.Fatalf("images out of order at index %d: sort_order %d", i, img.SortOrder)
		}
	}
}

// flakyStore fails the first n uploads, then succeeds.
type flakyStore struct {
	fails   int
	uploads int
}

func (s *flakyStore) Upload(_ context.Context, _ io.Reader, filename string) (string, error) {
	s.uploads++
	if s.uploads <= s.fails {
		return "", fmt.Errorf("store unavailable")
	}
	return fmt.Sprintf("https://cdn.example/%d-%s", s.uploads, filename), nil
}

type testTxRunner struct{ tx *gorm.DB }

func (r testTxRunner) WithTx(_ context.Context, fn func(tx *gorm.DB) error) error {
	return r.tx.Transaction(fn)
}

func TestUploadImagesPromotesFirstStoredFile(t *testing.T) {
	tx := beginTestTx(t, openTestDB(t))

	seller := mustCreateTestSeller(t, tx)
	product := mustCreateTestProduct(t, tx, seller.ID)

	store := &flakyStore{fails: 1}
	svc, err := NewService(NewRepository(tx), testTxRunner{tx: tx}, store, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	files := []UploadFile{
		{Reader: strings.NewReader("a"), Filename: "one.jpg"},
		{Reader: strings.NewReader("b"), Filename: "two.jpg"},
		{Reader: strings.NewReader("c"), Filename: "three.jpg"},
	}
	saved, err := svc.UploadImages(context.Background(), product.ID, files)
	if err != nil {
		t.Fatalf("upload images: %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("expected 2 stored images, got %d", len(saved))
	}
	if !saved[0].IsMain {
		t.Fatal("expected the first stored image to be main")
	}
	if saved[1].IsMain {
		t.Fatal("expected only one main image")
	}

	var mains []models.ProductImage
	if err := tx.Where("product_id = ? AND is_main = true", product.ID).Find(&mains).Error; err != nil {
		t.Fatalf("load main images: %v", err)
	}
	if len(mains) != 1 {
		t.Fatalf("expected exactly 1 main image, got %d", len(mains))
	}
	if mains[0].SortOrder != 1 {
		t.Fatalf("expected main image at sort_order 1, got %d", mains[0].SortOrder)
	}
}
