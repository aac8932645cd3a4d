package orders

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	pkgerrors "github.com/shiprakart/seller-backend/pkg/errors"
)

type stubOrderStore struct {
	items        []OrderItemRow
	itemOwners   map[uuid.UUID]uuid.UUID
	updated      map[uuid.UUID]string
	revenue      decimal.Decimal
	top          []TopProduct
	low          []LowStockProduct
	revenueErr   error
	topErr       error
	lowStockErr  error
	listItemsErr error
}

func (s *stubOrderStore) ListSellerItems(_ context.Context, _ uuid.UUID) ([]OrderItemRow, error) {
	return s.items, s.listItemsErr
}

func (s *stubOrderStore) FindItemOwner(_ context.Context, itemID uuid.UUID) (uuid.UUID, error) {
	owner, ok := s.itemOwners[itemID]
	if !ok {
		return uuid.Nil, gorm.ErrRecordNotFound
	}
	return owner, nil
}

func (s *stubOrderStore) UpdateItemStatus(_ context.Context, itemID uuid.UUID, status string) error {
	if s.updated == nil {
		s.updated = map[uuid.UUID]string{}
	}
	s.updated[itemID] = status
	return nil
}

func (s *stubOrderStore) TotalRevenue(_ context.Context, _ uuid.UUID) (decimal.Decimal, error) {
	return s.revenue, s.revenueErr
}

func (s *stubOrderStore) TopProducts(_ context.Context, _ uuid.UUID, _ int) ([]TopProduct, error) {
	return s.top, s.topErr
}

func (s *stubOrderStore) LowStock(_ context.Context, _ uuid.UUID, _ int) ([]LowStockProduct, error) {
	return s.low, s.lowStockErr
}

func TestUpdateItemStatusValidatesEnum(t *testing.T) {
	svc, err := NewService(&stubOrderStore{})
	require.NoError(t, err)

	err = svc.UpdateItemStatus(context.Background(), uuid.New(), uuid.New(), "CANCELLED")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestUpdateItemStatusRejectsForeignItems(t *testing.T) {
	seller := uuid.New()
	other := uuid.New()
	itemID := uuid.New()
	store := &stubOrderStore{itemOwners: map[uuid.UUID]uuid.UUID{itemID: other}}

	svc, err := NewService(store)
	require.NoError(t, err)

	err = svc.UpdateItemStatus(context.Background(), seller, itemID, "SHIPPED")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeForbidden))
	assert.Empty(t, store.updated)
}

func TestUpdateItemStatusMissingItem(t *testing.T) {
	svc, err := NewService(&stubOrderStore{})
	require.NoError(t, err)

	err = svc.UpdateItemStatus(context.Background(), uuid.New(), uuid.New(), "DELIVERED")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestUpdateItemStatusWritesForOwner(t *testing.T) {
	seller := uuid.New()
	itemID := uuid.New()
	store := &stubOrderStore{itemOwners: map[uuid.UUID]uuid.UUID{itemID: seller}}

	svc, err := NewService(store)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateItemStatus(context.Background(), seller, itemID, "SHIPPED"))
	assert.Equal(t, "SHIPPED", store.updated[itemID])
}

func TestDashboardComposesAllAggregates(t *testing.T) {
	store := &stubOrderStore{
		revenue: decimal.NewFromFloat(1234.50),
		top:     []TopProduct{{ProductID: uuid.New(), Title: "Red Tee", UnitsSold: 40}},
		low:     []LowStockProduct{{ProductID: uuid.New(), Title: "Blue Tee", InventoryQuantity: 3}},
	}

	svc, err := NewService(store)
	require.NoError(t, err)

	dashboard, err := svc.Dashboard(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.True(t, dashboard.TotalRevenue.Equal(decimal.NewFromFloat(1234.50)))
	assert.Len(t, dashboard.TopProducts, 1)
	assert.Len(t, dashboard.LowStock, 1)
}

func TestDashboardFailsWhenAnyQueryFails(t *testing.T) {
	store := &stubOrderStore{topErr: errors.New("query timeout")}

	svc, err := NewService(store)
	require.NoError(t, err)

	_, err = svc.Dashboard(context.Background(), uuid.New())
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeInternal))
}

func TestListSellerItemsReturnsEmptySlice(t *testing.T) {
	svc, err := NewService(&stubOrderStore{})
	require.NoError(t, err)

	rows, err := svc.ListSellerItems(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
