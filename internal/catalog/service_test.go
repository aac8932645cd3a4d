package catalog

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBuildVariantDefaults(t *testing.T) {
	productID := uuid.New()

	variant := buildVariant(productID, VariantInput{
		SKU:   "TSH-RED-M",
		Price: decimal.NewFromInt(499),
		Color: strPtr("Red"),
		Size:  strPtr("M"),
		Stock: 12,
	})

	assert.Equal(t, "Color", variant.Option1Name)
	require.NotNil(t, variant.Option1Value)
	assert.Equal(t, "Red", *variant.Option1Value)

	assert.Equal(t, "Size", variant.Option2Name)
	require.NotNil(t, variant.Option2Value)
	assert.Equal(t, "M", *variant.Option2Value)

	require.NotNil(t, variant.ProminentColour)
	assert.Equal(t, "Red", *variant.ProminentColour)

	require.NotNil(t, variant.ColorVariantGroupID)
	assert.Equal(t, fmt.Sprintf("GRP-%s-Red", productID), *variant.ColorVariantGroupID)

	assert.Equal(t, 12, variant.InventoryQuantity)
}

func TestBuildVariantKeepsExplicitValues(t *testing.T) {
	productID := uuid.New()

	variant := buildVariant(productID, VariantInput{
		SKU:                 "TSH-RED-M",
		Color:               strPtr("Red"),
		Size:                strPtr("M"),
		Option1Name:         strPtr("Shade"),
		Option2Name:         strPtr("Fit"),
		ProminentColour:     strPtr("Crimson"),
		ColorVariantGroupID: strPtr("GRP-custom"),
	})

	assert.Equal(t, "Shade", variant.Option1Name)
	assert.Equal(t, "Fit", variant.Option2Name)
	assert.Equal(t, "Crimson", *variant.ProminentColour)
	assert.Equal(t, "GRP-custom", *variant.ColorVariantGroupID)
}

func TestBuildVariantWithoutColor(t *testing.T) {
	productID := uuid.New()

	variant := buildVariant(productID, VariantInput{SKU: "TSH-NC-M", Size: strPtr("M")})

	assert.Nil(t, variant.Option1Value)
	assert.Nil(t, variant.ProminentColour)
	require.NotNil(t, variant.ColorVariantGroupID)
	assert.Equal(t, fmt.Sprintf("GRP-%s-", productID), *variant.ColorVariantGroupID)
}
