package utils

import (
	"math"
	"strings"
	"time"

	"github.com/rahulnm/zestmart/models"
)

// Accepted layouts for stored offer window dates. Rows imported from older
// systems carry several formats.
var offerDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Round2 rounds to two decimal places, the precision all derived prices
// are stored at.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ParseOfferDate parses a stored offer window bound. A nil, empty, or
// unparseable value returns nil: a bound we cannot read is treated as
// absent, never as an error.
func ParseOfferDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	raw := strings.TrimSpace(*s)
	if raw == "" {
		return nil
	}
	for _, layout := range offerDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// HasMalformedOfferDates reports whether the product stores an offer date
// that is present but unparseable, for either segment. The sweeper skips
// such rows instead of guessing.
func HasMalformedOfferDates(p *models.Product) bool {
	for _, s := range []*string{p.B2COfferStart, p.B2COfferEnd, p.B2BOfferStart, p.B2BOfferEnd} {
		if s == nil || strings.TrimSpace(*s) == "" {
			continue
		}
		if ParseOfferDate(s) == nil {
			return true
		}
	}
	return false
}

// OfferEvaluation is the outcome of evaluating one segment's offer.
type OfferEvaluation struct {
	Active     bool
	OfferPrice float64
	// Clear means the offer window has been missed and the offer fields
	// (percent, price, start, end) must be reset. The standing discount
	// is never touched.
	Clear bool
}

// EvaluateOffer decides whether an offer is live at the given instant.
//
// A non-positive percent means no offer. A positive percent with either
// window bound absent is active immediately and indefinitely. With both
// bounds present the offer is active only inside [start, end]; outside
// the window the caller must clear the offer fields.
func EvaluateOffer(basePrice, percent float64, start, end *string, now time.Time) OfferEvaluation {
	if percent <= 0 {
		return OfferEvaluation{}
	}

	startAt := ParseOfferDate(start)
	endAt := ParseOfferDate(end)

	if startAt == nil || endAt == nil {
		return OfferEvaluation{
			Active:     true,
			OfferPrice: Round2(basePrice * (1 - percent/100)),
		}
	}

	if now.Before(*startAt) || now.After(*endAt) {
		return OfferEvaluation{Clear: true}
	}

	return OfferEvaluation{
		Active:     true,
		OfferPrice: Round2(basePrice * (1 - percent/100)),
	}
}

// RefreshProductOffers applies the offer rules to both segments of a
// product in place and reports whether anything changed, i.e. whether the
// caller must persist the row. Applying it twice at the same instant is a
// no-op the second time.
func RefreshProductOffers(p *models.Product, now time.Time) bool {
	changed := false

	b2c := EvaluateOffer(p.B2CPrice, p.B2CActiveOffer, p.B2COfferStart, p.B2COfferEnd, now)
	if b2c.Clear {
		p.B2CActiveOffer = 0
		p.B2COfferPrice = 0
		p.B2COfferStart = nil
		p.B2COfferEnd = nil
		changed = true
	} else if b2c.Active && p.B2COfferPrice != b2c.OfferPrice {
		p.B2COfferPrice = b2c.OfferPrice
		changed = true
	}

	b2b := EvaluateOffer(p.B2BPrice, p.B2BActiveOffer, p.B2BOfferStart, p.B2BOfferEnd, now)
	if b2b.Clear {
		p.B2BActiveOffer = 0
		p.B2BOfferPrice = 0
		p.B2BOfferStart = nil
		p.B2BOfferEnd = nil
		changed = true
	} else if b2b.Active && p.B2BOfferPrice != b2b.OfferPrice {
		p.B2BOfferPrice = b2b.OfferPrice
		changed = true
	}

	return changed
}

// PricingForSegment resolves the effective pricing of a product for one
// segment at the given instant. Callers should run RefreshProductOffers
// first so cleared offers are persisted; this function evaluates the
// current state only.
//
// Returned current price never exceeds the original, and the discount
// percentage matches whichever discount is in effect: the windowed offer
// when active, otherwise the standing discount.
func PricingForSegment(p *models.Product, segment string, now time.Time) (current, original, discountPercent float64) {
	var base, standing, offerPct float64
	var start, end *string

	if segment == models.SegmentBusiness {
		base, standing, offerPct = p.B2BPrice, p.B2BDiscount, p.B2BActiveOffer
		start, end = p.B2BOfferStart, p.B2BOfferEnd
	} else {
		base, standing, offerPct = p.B2CPrice, p.B2CDiscount, p.B2CActiveOffer
		start, end = p.B2COfferStart, p.B2COfferEnd
	}

	original = base
	eval := EvaluateOffer(base, offerPct, start, end, now)
	if eval.Active {
		return eval.OfferPrice, original, offerPct
	}

	if standing > 0 {
		return Round2(base * (1 - standing/100)), original, standing
	}
	return base, original, 0
}
