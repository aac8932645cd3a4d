package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	pkgerrors "github.com/shiprakart/seller-backend/pkg/errors"
)

type stubRunner struct{ err error }

func (s stubRunner) WithTx(_ context.Context, _ func(tx *gorm.DB) error) error {
	return s.err
}

func TestAdjustStockRequiresReason(t *testing.T) {
	svc, err := NewService(NewRepository(nil), stubRunner{})
	require.NoError(t, err)

	_, err = svc.AdjustStock(context.Background(), uuid.New(), -5, "")
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestAdjustStockMapsMissingProduct(t *testing.T) {
	svc, err := NewService(NewRepository(nil), stubRunner{err: gorm.ErrRecordNotFound})
	require.NoError(t, err)

	_, err = svc.AdjustStock(context.Background(), uuid.New(), -5, "sale")
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}
