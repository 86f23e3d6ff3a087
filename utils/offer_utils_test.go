package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rahulnm/zestmart/models"
)

func strPtr(s string) *string { return &s }

func TestEvaluateOfferInactiveWhenPercentZero(t *testing.T) {
	now := time.Now()
	eval := EvaluateOffer(100, 0, nil, nil, now)
	assert.False(t, eval.Active)
	assert.False(t, eval.Clear)
	assert.Equal(t, 0.0, eval.OfferPrice)

	eval = EvaluateOffer(100, -5, nil, nil, now)
	assert.False(t, eval.Active)
	assert.Equal(t, 0.0, eval.OfferPrice)
}

func TestEvaluateOfferUnboundedWhenDatesAbsent(t *testing.T) {
	now := time.Now()

	eval := EvaluateOffer(100, 20, nil, nil, now)
	assert.True(t, eval.Active)
	assert.Equal(t, 80.0, eval.OfferPrice)

	// Only one bound present still counts as unbounded
	start := now.Add(-time.Hour).Format(time.RFC3339)
	eval = EvaluateOffer(100, 20, &start, nil, now)
	assert.True(t, eval.Active)
	assert.Equal(t, 80.0, eval.OfferPrice)
}

func TestEvaluateOfferInsideWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	start := strPtr("2026-03-01T00:00:00Z")
	end := strPtr("2026-03-31T23:59:59Z")

	eval := EvaluateOffer(200, 50, start, end, now)
	assert.True(t, eval.Active)
	assert.False(t, eval.Clear)
	assert.Equal(t, 100.0, eval.OfferPrice)
}

func TestEvaluateOfferExpiredWindowSignalsClear(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	start := strPtr("2026-03-01T00:00:00Z")
	end := strPtr("2026-03-31T23:59:59Z")

	eval := EvaluateOffer(200, 50, start, end, now)
	assert.False(t, eval.Active)
	assert.True(t, eval.Clear)
}

func TestEvaluateOfferFutureWindowSignalsClear(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	start := strPtr("2026-03-01T00:00:00Z")
	end := strPtr("2026-03-31T23:59:59Z")

	eval := EvaluateOffer(200, 50, start, end, now)
	assert.False(t, eval.Active)
	assert.True(t, eval.Clear)
}

func TestEvaluateOfferWindowBoundsInclusive(t *testing.T) {
	start := strPtr("2026-03-01T00:00:00Z")
	end := strPtr("2026-03-31T00:00:00Z")

	atStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	atEnd := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	assert.True(t, EvaluateOffer(100, 10, start, end, atStart).Active)
	assert.True(t, EvaluateOffer(100, 10, start, end, atEnd).Active)
}

func TestEvaluateOfferMalformedDatesTreatedAbsent(t *testing.T) {
	now := time.Now()
	eval := EvaluateOffer(100, 25, strPtr("not-a-date"), strPtr("also bad"), now)
	assert.True(t, eval.Active)
	assert.Equal(t, 75.0, eval.OfferPrice)
}

func TestEvaluateOfferRoundsToTwoDecimals(t *testing.T) {
	eval := EvaluateOffer(99.99, 33.33, nil, nil, time.Now())
	assert.True(t, eval.Active)
	assert.Equal(t, 66.66, eval.OfferPrice)
}

func TestParseOfferDateLayouts(t *testing.T) {
	for _, raw := range []string{
		"2026-03-01T10:30:00Z",
		"2026-03-01T10:30:00",
		"2026-03-01 10:30:00",
		"2026-03-01",
	} {
		parsed := ParseOfferDate(&raw)
		assert.NotNil(t, parsed, "expected %q to parse", raw)
	}

	assert.Nil(t, ParseOfferDate(nil))
	assert.Nil(t, ParseOfferDate(strPtr("")))
	assert.Nil(t, ParseOfferDate(strPtr("  ")))
	assert.Nil(t, ParseOfferDate(strPtr("31/03/2026")))
}

func TestHasMalformedOfferDates(t *testing.T) {
	p := &models.Product{B2COfferEnd: strPtr("garbage")}
	assert.True(t, HasMalformedOfferDates(p))

	p = &models.Product{B2COfferEnd: strPtr("2026-03-31")}
	assert.False(t, HasMalformedOfferDates(p))

	p = &models.Product{}
	assert.False(t, HasMalformedOfferDates(p))
}

func TestRefreshProductOffersClearsExpiredKeepsStandingDiscount(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	p := &models.Product{
		B2CPrice:       200,
		B2CDiscount:    10,
		B2CActiveOffer: 50,
		B2COfferPrice:  100,
		B2COfferStart:  strPtr("2026-03-01T00:00:00Z"),
		B2COfferEnd:    strPtr("2026-03-31T23:59:59Z"),
	}

	changed := RefreshProductOffers(p, now)
	assert.True(t, changed)
	assert.Equal(t, 0.0, p.B2CActiveOffer)
	assert.Equal(t, 0.0, p.B2COfferPrice)
	assert.Nil(t, p.B2COfferStart)
	assert.Nil(t, p.B2COfferEnd)
	assert.Equal(t, 10.0, p.B2CDiscount)
}

func TestRefreshProductOffersIdempotent(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	p := &models.Product{
		B2CPrice:       200,
		B2CActiveOffer: 50,
		B2COfferStart:  strPtr("2026-03-01T00:00:00Z"),
		B2COfferEnd:    strPtr("2026-03-31T23:59:59Z"),
	}

	assert.True(t, RefreshProductOffers(p, now))
	assert.False(t, RefreshProductOffers(p, now))
}

func TestRefreshProductOffersSegmentsIndependent(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	p := &models.Product{
		B2CPrice:       100,
		B2CActiveOffer: 20,
		B2BPrice:       80,
		B2BActiveOffer: 50,
		B2BOfferStart:  strPtr("2026-03-01T00:00:00Z"),
		B2BOfferEnd:    strPtr("2026-03-31T23:59:59Z"),
	}

	changed := RefreshProductOffers(p, now)
	assert.True(t, changed)

	// Consumer offer is unbounded and stays live
	assert.Equal(t, 20.0, p.B2CActiveOffer)
	assert.Equal(t, 80.0, p.B2COfferPrice)

	// Business offer expired and is cleared
	assert.Equal(t, 0.0, p.B2BActiveOffer)
	assert.Equal(t, 0.0, p.B2BOfferPrice)
	assert.Nil(t, p.B2BOfferEnd)
}

func TestPricingForSegmentActiveOffer(t *testing.T) {
	now := time.Now()
	p := &models.Product{
		B2CPrice:       100,
		B2CActiveOffer: 20,
	}

	current, original, pct := PricingForSegment(p, models.SegmentConsumer, now)
	assert.Equal(t, 80.0, current)
	assert.Equal(t, 100.0, original)
	assert.Equal(t, 20.0, pct)
	assert.LessOrEqual(t, current, original)
}

func TestPricingForSegmentFallsBackToStandingDiscount(t *testing.T) {
	now := time.Now()
	p := &models.Product{
		B2BPrice:    80,
		B2BDiscount: 25,
	}

	current, original, pct := PricingForSegment(p, models.SegmentBusiness, now)
	assert.Equal(t, 60.0, current)
	assert.Equal(t, 80.0, original)
	assert.Equal(t, 25.0, pct)
}

func TestPricingForSegmentNoDiscounts(t *testing.T) {
	now := time.Now()
	p := &models.Product{B2CPrice: 49.5}

	current, original, pct := PricingForSegment(p, models.SegmentConsumer, now)
	assert.Equal(t, 49.5, current)
	assert.Equal(t, 49.5, original)
	assert.Equal(t, 0.0, pct)
}
