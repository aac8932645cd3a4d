package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shiprakart/seller-backend/pkg/db"
	"github.com/shiprakart/seller-backend/pkg/db/models"
	pkgerrors "github.com/shiprakart/seller-backend/pkg/errors"
)

// Service maintains the stock ledger.
type Service interface {
	AdjustStock(ctx context.Context, productID uuid.UUID, amount int, reason string) (int, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type service struct {
	repo     *Repository
	txRunner txRunner
}

// NewService constructs the inventory service.
func NewService(repo *Repository, runner txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	if runner == nil {
		return nil, fmt.Errorf("tx runner required")
	}
	return &service{repo: repo, txRunner: runner}, nil
}

// AdjustStock applies the signed delta to the product's quantity and appends
// one audit row. Both writes commit together or neither does.
func (s *service) AdjustStock(ctx context.Context, productID uuid.UUID, amount int, reason string) (int, error) {
	if reason == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "Reason is required")
	}

	var newStock int
	err := s.txRunner.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		level, err := repo.AdjustQuantity(ctx, productID, amount)
		if err != nil {
			return err
		}
		newStock = level

		return repo.AppendLog(ctx, &models.StockLog{
			ProductID:     productID,
			ChangeAmount:  amount,
			NewStockLevel: newStock,
			Reason:        reason,
		})
	})
	if err != nil {
		if db.IsNotFound(err) {
			return 0, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "adjust stock")
	}
	return newStock, nil
}
