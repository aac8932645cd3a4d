package orders

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/shiprakart/seller-backend/pkg/db"
	"github.com/shiprakart/seller-backend/pkg/db/models"
	pkgerrors "github.com/shiprakart/seller-backend/pkg/errors"
)

const (
	topProductsLimit  = 5
	lowStockThreshold = 10
)

// Service exposes seller order reporting.
type Service interface {
	ListSellerItems(ctx context.Context, sellerID uuid.UUID) ([]OrderItemRow, error)
	UpdateItemStatus(ctx context.Context, sellerID, itemID uuid.UUID, status string) error
	Dashboard(ctx context.Context, sellerID uuid.UUID) (*DashboardDTO, error)
}

type orderStore interface {
	ListSellerItems(ctx context.Context, sellerID uuid.UUID) ([]OrderItemRow, error)
	FindItemOwner(ctx context.Context, itemID uuid.UUID) (uuid.UUID, error)
	UpdateItemStatus(ctx context.Context, itemID uuid.UUID, status string) error
	TotalRevenue(ctx context.Context, sellerID uuid.UUID) (decimal.Decimal, error)
	TopProducts(ctx context.Context, sellerID uuid.UUID, limit int) ([]TopProduct, error)
	LowStock(ctx context.Context, sellerID uuid.UUID, threshold int) ([]LowStockProduct, error)
}

type service struct {
	repo orderStore
}

// NewService constructs the orders service.
func NewService(repo orderStore) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListSellerItems(ctx context.Context, sellerID uuid.UUID) ([]OrderItemRow, error) {
	rows, err := s.repo.ListSellerItems(ctx, sellerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list order items")
	}
	if rows == nil {
		rows = []OrderItemRow{}
	}
	return rows, nil
}

// UpdateItemStatus verifies the item belongs to one of the seller's
// products before writing. Any of the three statuses may follow any other.
func (s *service) UpdateItemStatus(ctx context.Context, sellerID, itemID uuid.UUID, status string) error {
	if !models.ValidOrderItemStatus(status) {
		return pkgerrors.New(pkgerrors.CodeValidation, "Status must be one of PENDING, SHIPPED, DELIVERED")
	}

	ownerID, err := s.repo.FindItemOwner(ctx, itemID)
	if err != nil {
		if db.IsNotFound(err) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Order item not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order item")
	}
	if ownerID != sellerID {
		return pkgerrors.New(pkgerrors.CodeForbidden, "Order item does not belong to your products")
	}

	if err := s.repo.UpdateItemStatus(ctx, itemID, status); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update order item status")
	}
	return nil
}

// Dashboard fans out the three aggregates concurrently; any query failure
// fails the whole call.
func (s *service) Dashboard(ctx context.Context, sellerID uuid.UUID) (*DashboardDTO, error) {
	var dashboard DashboardDTO

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, err := s.repo.TotalRevenue(gctx, sellerID)
		if err != nil {
			return err
		}
		dashboard.TotalRevenue = total
		return nil
	})
	g.Go(func() error {
		top, err := s.repo.TopProducts(gctx, sellerID, topProductsLimit)
		if err != nil {
			return err
		}
		dashboard.TopProducts = top
		return nil
	})
	g.Go(func() error {
		low, err := s.repo.LowStock(gctx, sellerID, lowStockThreshold)
		if err != nil {
			return err
		}
		dashboard.LowStock = low
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load dashboard")
	}

	if dashboard.TopProducts == nil {
		dashboard.TopProducts = []TopProduct{}
	}
	if dashboard.LowStock == nil {
		dashboard.LowStock = []LowStockProduct{}
	}
	return &dashboard, nil
}
