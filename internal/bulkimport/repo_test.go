package bulkimport

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRow() Row {
	return Row{
		Handle:     "tee-red",
		Title:      "Red Tee",
		Vendor:     "Northline",
		CategoryID: uuid.New(),
		SKU:        "TEE-RED-M",
		Price:      decimal.NewFromInt(499),
		Stock:      12,
		Size:       "M",
		Color:      "Red",
	}
}

func TestBuildProductRowDerivesMasterSKUFromHandle(t *testing.T) {
	sellerID := uuid.New()
	row := sampleRow()

	product := buildProductRow(sellerID, row)

	assert.Equal(t, "TEE-RED", product.SKU)
	assert.NotEqual(t, row.SKU, product.SKU)
	assert.Equal(t, row.Handle, product.Handle)
	assert.Equal(t, sellerID, product.SellerID)
	assert.Equal(t, row.CategoryID, product.CategoryID)
}

func TestBuildVariantRowFillsBothSizeColumns(t *testing.T) {
	productID := uuid.New()

	variant := buildVariantRow(productID, sampleRow())

	require.NotNil(t, variant.BrandSize)
	require.NotNil(t, variant.StandardSize)
	require.NotNil(t, variant.Option2Value)
	assert.Equal(t, "M", *variant.BrandSize)
	assert.Equal(t, "M", *variant.StandardSize)
	assert.Equal(t, "M", *variant.Option2Value)
	require.NotNil(t, variant.ProminentColour)
	assert.Equal(t, "Red", *variant.ProminentColour)
}

func TestBuildVariantRowSkipsEmptySizeAndColor(t *testing.T) {
	row := sampleRow()
	row.Size = ""
	row.Color = ""

	variant := buildVariantRow(uuid.New(), row)

	assert.Nil(t, variant.BrandSize)
	assert.Nil(t, variant.StandardSize)
	assert.Nil(t, variant.Option2Value)
	assert.Nil(t, variant.Option1Value)
	assert.Nil(t, variant.ProminentColour)
}
