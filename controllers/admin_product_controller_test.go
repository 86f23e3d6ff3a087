package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rahulnm/zestmart/models"
)

func TestRebindVariants(t *testing.T) {
	variants := []models.ProductVariant{
		{ID: 7, ProductID: "prod_old", Color: "Red", ColorCode: "#f00", Stock: 5},
		{Color: "Blue", ColorCode: "#00f", Stock: 3},
	}

	rebound := rebindVariants("prod_new123", variants)

	assert.Len(t, rebound, 2)
	for _, v := range rebound {
		assert.Equal(t, uint(0), v.ID)
		assert.Equal(t, "prod_new123", v.ProductID)
	}
	assert.Equal(t, "Red", rebound[0].Color)
	assert.Equal(t, 5, rebound[0].Stock)
	assert.Equal(t, "Blue", rebound[1].Color)
}

func TestRebindAttributes(t *testing.T) {
	attrs := []models.ProductAttribute{
		{ID: 3, ProductID: "prod_other", Name: "Material", Value: "Steel"},
	}

	rebound := rebindAttributes("prod_new123", attrs)

	assert.Len(t, rebound, 1)
	assert.Equal(t, uint(0), rebound[0].ID)
	assert.Equal(t, "prod_new123", rebound[0].ProductID)
	assert.Equal(t, "Material", rebound[0].Name)
	assert.Equal(t, "Steel", rebound[0].Value)
}

func TestValidateProductRequestDiscountRange(t *testing.T) {
	req := ProductRequest{Name: "Widget", B2CPrice: 100, B2CDiscount: 150}
	valid, msg := validateProductRequest(&req)
	assert.False(t, valid)
	assert.NotEmpty(t, msg)

	req.B2CDiscount = 100
	valid, _ = validateProductRequest(&req)
	assert.True(t, valid)
}
