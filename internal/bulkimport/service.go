package bulkimport

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shiprakart/seller-backend/pkg/db"
	pkgerrors "github.com/shiprakart/seller-backend/pkg/errors"
)

// Service ingests a seller's catalog CSV.
type Service interface {
	ImportFile(ctx context.Context, sellerID uuid.UUID, path string) (int, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type service struct {
	repo     *Repository
	txRunner txRunner
}

// NewService constructs the bulk import service.
func NewService(repo *Repository, runner txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("bulk import repository required")
	}
	if runner == nil {
		return nil, fmt.Errorf("tx runner required")
	}
	return &service{repo: repo, txRunner: runner}, nil
}

// ImportFile parses the whole CSV first, then upserts every row inside one
// transaction: all rows land or none do. The temp file is removed on every
// exit path.
func (s *service) ImportFile(ctx context.Context, sellerID uuid.UUID, path string) (int, error) {
	defer os.Remove(path)

	file, err := os.Open(path)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "open import file")
	}

	rows, err := ParseCSV(file)
	file.Close()
	if err != nil {
		return 0, err
	}

	err = s.txRunner.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		for _, row := range rows {
			productID, err := repo.UpsertProduct(ctx, sellerID, row)
			if err != nil {
				return err
			}
			if err := repo.UpsertVariant(ctx, productID, row); err != nil {
				return err
			}
			if row.ImageURL != "" {
				if err := repo.InsertImage(ctx, productID, row.ImageURL); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		switch {
		case db.IsUniqueViolation(err, ""):
			return 0, pkgerrors.New(pkgerrors.CodeConflict, "Duplicate SKU or GTIN in file")
		case db.IsForeignKeyViolation(err):
			return 0, pkgerrors.New(pkgerrors.CodeValidation, "Invalid Category ID in file")
		default:
			return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "import products")
		}
	}

	return len(rows), nil
}
