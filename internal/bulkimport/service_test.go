package bulkimport

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	pkgerrors "github.com/shiprakart/seller-backend/pkg/errors"
)

type stubRunner struct{ err error }

func (s stubRunner) WithTx(_ context.Context, _ func(tx *gorm.DB) error) error {
	return s.err
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "import.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func validCSV() string {
	return csvHeader +
		fmt.Sprintf("tee-red,Red Tee,Northline,%s,TEE-RED-M,499,12,M,Red,\n", uuid.New())
}

func TestImportFileCountsRowsAndCleansUp(t *testing.T) {
	path := writeTempCSV(t, validCSV())

	svc, err := NewService(NewRepository(nil), stubRunner{})
	require.NoError(t, err)

	count, err := svc.ImportFile(context.Background(), uuid.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestImportFileMapsConstraintFailures(t *testing.T) {
	dupErr := fmt.Errorf(`duplicate key value violates unique constraint "unique_sku" (SQLSTATE 23505)`)
	fkErr := fmt.Errorf(`insert or update on table "products" violates foreign key constraint "products_category_id_fkey" (SQLSTATE 23503)`)

	t.Run("unique violation becomes conflict", func(t *testing.T) {
		svc, err := NewService(NewRepository(nil), stubRunner{err: dupErr})
		require.NoError(t, err)

		_, err = svc.ImportFile(context.Background(), uuid.New(), writeTempCSV(t, validCSV()))
		assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict))
	})

	t.Run("foreign key violation becomes validation", func(t *testing.T) {
		svc, err := NewService(NewRepository(nil), stubRunner{err: fkErr})
		require.NoError(t, err)

		_, err = svc.ImportFile(context.Background(), uuid.New(), writeTempCSV(t, validCSV()))
		assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	})
}
