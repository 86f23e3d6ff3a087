package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rahulnm/zestmart/models"
)

func TestMapBulkHeaderAliases(t *testing.T) {
	cols := MapBulkHeader([]string{"Product Name", "CATEGORY", "Selling Price", "wholesale_price", "Qty", "Discount"})

	assert.Equal(t, 0, cols["name"])
	assert.Equal(t, 1, cols["category"])
	assert.Equal(t, 2, cols["b2c_price"])
	assert.Equal(t, 3, cols["b2b_price"])
	assert.Equal(t, 4, cols["stock"])
	assert.Equal(t, 5, cols["b2c_discount"])
}

func TestMapBulkHeaderFirstAliasWins(t *testing.T) {
	cols := MapBulkHeader([]string{"price", "selling_price"})
	assert.Equal(t, 0, cols["b2c_price"])
}

func TestMapBulkHeaderIgnoresUnknownColumns(t *testing.T) {
	cols := MapBulkHeader([]string{"name", "warehouse_bin", "price"})
	_, ok := cols["warehouse_bin"]
	assert.False(t, ok)
	assert.Equal(t, 2, cols["b2c_price"])
}

func TestProductFromRow(t *testing.T) {
	cols := MapBulkHeader([]string{"name", "category", "price", "b2b_price", "qty", "status"})
	cells := []string{"Steel Bottle", "Kitchen", "₹499.00", "350", "25", "Published"}

	p, err := ProductFromRow(cells, cols)
	assert.NoError(t, err)
	assert.Equal(t, "Steel Bottle", p.Name)
	assert.Equal(t, "Kitchen", p.Category)
	assert.Equal(t, 499.0, p.B2CPrice)
	assert.Equal(t, 350.0, p.B2BPrice)
	assert.Equal(t, 25, p.Stock)
	assert.Equal(t, models.ProductStatusPublished, p.Status)
	assert.True(t, len(p.ID) > len("prod_"))
}

func TestProductFromRowDefaults(t *testing.T) {
	cols := MapBulkHeader([]string{"name", "price"})
	p, err := ProductFromRow([]string{"Widget", "100"}, cols)

	assert.NoError(t, err)
	assert.Equal(t, models.ProductStatusDraft, p.Status)
	// Missing wholesale price falls back to the consumer price
	assert.Equal(t, 100.0, p.B2BPrice)
	assert.Equal(t, 0, p.Stock)
}

func TestProductFromRowRejectsMissingName(t *testing.T) {
	cols := MapBulkHeader([]string{"name", "price"})
	_, err := ProductFromRow([]string{"", "100"}, cols)
	assert.Error(t, err)
}

func TestProductFromRowRejectsBadPrice(t *testing.T) {
	cols := MapBulkHeader([]string{"name", "price"})

	for _, bad := range []string{"", "NaN", "n/a", "free", "0"} {
		_, err := ProductFromRow([]string{"Widget", bad}, cols)
		assert.Error(t, err, "price %q should be rejected", bad)
	}
}

func TestProductFromRowRejectsOutOfRangeDiscount(t *testing.T) {
	cols := MapBulkHeader([]string{"name", "price", "discount", "b2b_discount"})

	for _, bad := range [][]string{
		{"Widget", "100", "150", "10"},
		{"Widget", "100", "10", "101"},
		{"Widget", "100", "-5", "10"},
	} {
		_, err := ProductFromRow(bad, cols)
		assert.Error(t, err, "discounts %q/%q should be rejected", bad[2], bad[3])
	}

	p, err := ProductFromRow([]string{"Widget", "100", "100", "0"}, cols)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, p.B2CDiscount)
}

func TestParseBulkFloatCoercion(t *testing.T) {
	cases := map[string]float64{
		"1,299.50": 1299.5,
		"₹450":     450,
		" 12 ":     12,
		"NaN":      0,
		"-":        0,
		"":         0,
		"abc":      0,
	}
	for input, want := range cases {
		assert.Equal(t, want, parseBulkFloat(input), "input %q", input)
	}
}
