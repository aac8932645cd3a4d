package catalog

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shiprakart/seller-backend/pkg/db"
	"github.com/shiprakart/seller-backend/pkg/db/models"
	pkgerrors "github.com/shiprakart/seller-backend/pkg/errors"
	"github.com/shiprakart/seller-backend/pkg/logger"
	"github.com/shiprakart/seller-backend/pkg/storage"
)

const maxImagesPerBatch = 5

// UploadFile is one incoming image file.
type UploadFile struct {
	Reader   io.Reader
	Filename string
}

// Service exposes seller catalog management.
type Service interface {
	CreateProduct(ctx context.Context, sellerID uuid.UUID, input CreateProductInput) (*ProductDTO, error)
	GetProductByHandle(ctx context.Context, handle string) (*ProductDetailDTO, error)
	DeleteProduct(ctx context.Context, sellerID, productID uuid.UUID) error
	UploadImages(ctx context.Context, productID uuid.UUID, files []UploadFile) ([]ImageDTO, error)
	AddVariants(ctx context.Context, sellerID, productID uuid.UUID, inputs []VariantInput) ([]VariantDTO, error)
	AuthorizeOwnership(ctx context.Context, productID, sellerID uuid.UUID) error
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type service struct {
	repo     *Repository
	txRunner txRunner
	store    storage.ObjectStore
	logg     *logger.Logger
}

// NewService constructs the catalog service.
func NewService(repo *Repository, runner txRunner, store storage.ObjectStore, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if runner == nil {
		return nil, fmt.Errorf("tx runner required")
	}
	if store == nil {
		return nil, fmt.Errorf("object store required")
	}
	return &service{repo: repo, txRunner: runner, store: store, logg: logg}, nil
}

func (s *service) CreateProduct(ctx context.Context, sellerID uuid.UUID, input CreateProductInput) (*ProductDTO, error) {
	product := &models.Product{
		Handle:            input.Handle,
		SKU:               input.SKU,
		Title:             input.Title,
		Vendor:            input.Vendor,
		CategoryID:        input.CategoryID,
		SubcategoryID:     input.SubcategoryID,
		ProductTypeID:     input.ProductTypeID,
		Price:             input.Price,
		InventoryQuantity: input.Stock,
		Status:            models.ProductStatusActive,
		ProductDetails:    input.ProductDetails,
		StyleNote:         input.StyleNote,
		SellerID:          sellerID,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		switch {
		case db.IsUniqueViolation(err, ""):
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "Handle or SKU already exists")
		case db.IsForeignKeyViolation(err):
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid Category, Subcategory, or Type ID")
		default:
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create product")
		}
	}
	return toProductDTO(product), nil
}

// GetProductByHandle is a public storefront read; no ownership check.
func (s *service) GetProductByHandle(ctx context.Context, handle string) (*ProductDetailDTO, error) {
	if handle == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Handle is required")
	}
	product, err := s.repo.FindByHandle(ctx, handle)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	return toProductDetailDTO(product), nil
}

// DeleteProduct removes the product scoped to its owner in one statement.
// Missing and not-owned are indistinguishable here; both are NotFound.
func (s *service) DeleteProduct(ctx context.Context, sellerID, productID uuid.UUID) error {
	affected, err := s.repo.DeleteScoped(ctx, productID, sellerID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete product")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
	}
	return nil
}

// UploadImages stores each file and inserts its row independently. A failed
// file is skipped rather than rolling back the batch. The first stored file
// becomes the product's main image; prior mains are cleared up front.
func (s *service) UploadImages(ctx context.Context, productID uuid.UUID, files []UploadFile) ([]ImageDTO, error) {
	if len(files) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "At least one image file is required")
	}
	if len(files) > maxImagesPerBatch {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("At most %d images per upload", maxImagesPerBatch))
	}

	if err := s.repo.ClearMainImages(ctx, productID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear main images")
	}

	altText := fmt.Sprintf("Image for product %s", productID)
	saved := make([]ImageDTO, 0, len(files))
	for i, file := range files {
		url, err := s.store.Upload(ctx, file.Reader, file.Filename)
		if err != nil {
			s.warn(ctx, "image.upload.failed", file.Filename, err)
			continue
		}

		image := &models.ProductImage{
			ProductID: productID,
			URL:       url,
			AltText:   &altText,
			IsMain:    len(saved) == 0,
			SortOrder: i,
		}
		if err := s.repo.CreateImage(ctx, image); err != nil {
			s.warn(ctx, "image.insert.failed", file.Filename, err)
			continue
		}
		saved = append(saved, toImageDTO(image))
	}

	if len(saved) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "no images could be stored")
	}
	return saved, nil
}

// AddVariants verifies ownership, then inserts the whole batch in one
// transaction. Any SKU or GTIN collision fails the entire call.
func (s *service) AddVariants(ctx context.Context, sellerID, productID uuid.UUID, inputs []VariantInput) ([]VariantDTO, error) {
	if len(inputs) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "At least one variant is required")
	}
	if err := s.AuthorizeOwnership(ctx, productID, sellerID); err != nil {
		return nil, err
	}

	variants := make([]models.ProductVariant, 0, len(inputs))
	for _, input := range inputs {
		if input.SKU == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "Variant SKU is required")
		}
		variants = append(variants, buildVariant(productID, input))
	}

	err := s.txRunner.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).CreateVariants(ctx, variants)
	})
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "Variant SKU or GTIN already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "insert variants")
	}

	out := make([]VariantDTO, 0, len(variants))
	for i := range variants {
		out = append(out, toVariantDTO(&variants[i]))
	}
	return out, nil
}

// AuthorizeOwnership distinguishes a missing product from one owned by
// someone else.
func (s *service) AuthorizeOwnership(ctx context.Context, productID, sellerID uuid.UUID) error {
	ownerID, err := s.repo.FindOwnerID(ctx, productID)
	if err != nil {
		if db.IsNotFound(err) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product owner")
	}
	if ownerID != sellerID {
		return pkgerrors.New(pkgerrors.CodeForbidden, "You do not own this product")
	}
	return nil
}

func buildVariant(productID uuid.UUID, input VariantInput) models.ProductVariant {
	variant := models.ProductVariant{
		ProductID:         productID,
		SKU:               input.SKU,
		Price:             input.Price,
		Option1Name:       "Color",
		Option1Value:      input.Color,
		Option2Name:       "Size",
		Option2Value:      input.Size,
		InventoryQuantity: input.Stock,
		BrandSize:         input.BrandSize,
		StandardSize:      input.StandardSize,
		GTIN:              input.GTIN,
		HSN:               input.HSN,
		ProminentColour:   input.ProminentColour,
	}
	if input.Option1Name != nil && *input.Option1Name != "" {
		variant.Option1Name = *input.Option1Name
	}
	if input.Option2Name != nil && *input.Option2Name != "" {
		variant.Option2Name = *input.Option2Name
	}
	if variant.ProminentColour == nil {
		variant.ProminentColour = input.Color
	}

	groupID := input.ColorVariantGroupID
	if groupID == nil || *groupID == "" {
		color := ""
		if input.Color != nil {
			color = *input.Color
		}
		generated := fmt.Sprintf("GRP-%s-%s", productID, color)
		groupID = &generated
	}
	variant.ColorVariantGroupID = groupID

	return variant
}

func (s *service) warn(ctx context.Context, msg, filename string, err error) {
	if s.logg == nil {
		return
	}
	ctx = s.logg.WithFields(ctx, map[string]any{"file": filename, "error": err.Error()})
	s.logg.Warn(ctx, msg)
}
