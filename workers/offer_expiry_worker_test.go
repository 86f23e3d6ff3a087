package workers

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rahulnm/zestmart/models"
)

func strPtr(s string) *string { return &s }

func expiredProduct(id string) models.Product {
	return models.Product{
		ID:             id,
		B2CPrice:       200,
		B2CDiscount:    10,
		B2CActiveOffer: 50,
		B2COfferPrice:  100,
		B2COfferStart:  strPtr("2026-03-01T00:00:00Z"),
		B2COfferEnd:    strPtr("2026-03-31T23:59:59Z"),
	}
}

func TestSweepProductsClearsExpiredOffers(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	products := []models.Product{expiredProduct("prod_1"), expiredProduct("prod_2")}
	changed, skipped := SweepProducts(products, now)

	assert.Len(t, changed, 2)
	assert.Empty(t, skipped)
	for _, p := range changed {
		assert.Equal(t, 0.0, p.B2CActiveOffer)
		assert.Equal(t, 0.0, p.B2COfferPrice)
		assert.Nil(t, p.B2COfferStart)
		assert.Nil(t, p.B2COfferEnd)
		assert.Equal(t, 10.0, p.B2CDiscount)
	}
}

func TestSweepProductsSkipsMalformedRecords(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	products := make([]models.Product, 0, 10)
	for i := 0; i < 9; i++ {
		products = append(products, expiredProduct(fmt.Sprintf("prod_%d", i)))
	}
	bad := expiredProduct("prod_bad")
	bad.B2COfferEnd = strPtr("not a timestamp")
	products = append(products, bad)

	changed, skipped := SweepProducts(products, now)

	assert.Len(t, changed, 9)
	assert.Equal(t, []string{"prod_bad"}, skipped)

	// The skipped record is untouched
	assert.Equal(t, 50.0, products[9].B2CActiveOffer)
	assert.NotNil(t, products[9].B2COfferEnd)
}

func TestSweepProductsLeavesLiveOffersAlone(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	live := expiredProduct("prod_live")
	changed, skipped := SweepProducts([]models.Product{live}, now)

	assert.Empty(t, changed)
	assert.Empty(t, skipped)
}

func TestSweepProductsSecondPassIsNoop(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	products := []models.Product{expiredProduct("prod_1")}
	changed, _ := SweepProducts(products, now)
	assert.Len(t, changed, 1)

	changedAgain, _ := SweepProducts(changed, now)
	assert.Empty(t, changedAgain)
}

func TestNewOfferExpiryWorkerDefaultInterval(t *testing.T) {
	t.Setenv("OFFER_SWEEP_INTERVAL", "")
	w := NewOfferExpiryWorker()
	assert.Equal(t, 60*time.Second, w.interval)
}

func TestNewOfferExpiryWorkerCustomInterval(t *testing.T) {
	t.Setenv("OFFER_SWEEP_INTERVAL", "5s")
	w := NewOfferExpiryWorker()
	assert.Equal(t, 5*time.Second, w.interval)
}

func TestNewOfferExpiryWorkerRejectsInvalidInterval(t *testing.T) {
	t.Setenv("OFFER_SWEEP_INTERVAL", "soon")
	w := NewOfferExpiryWorker()
	assert.Equal(t, 60*time.Second, w.interval)
}
