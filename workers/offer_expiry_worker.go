package workers

import (
	"context"
	"os"
	"time"

	"github.com/rahulnm/zestmart/config"
	"github.com/rahulnm/zestmart/models"
	"github.com/rahulnm/zestmart/utils"
)

const defaultSweepInterval = 60 * time.Second

// OfferExpiryWorker clears offers whose window has passed so that read
// paths that never touch a product still converge on correct pricing.
type OfferExpiryWorker struct {
	interval time.Duration
}

// NewOfferExpiryWorker creates a sweeper with the configured interval.
// OFFER_SWEEP_INTERVAL overrides the 60s default.
func NewOfferExpiryWorker() *OfferExpiryWorker {
	interval := defaultSweepInterval
	if raw := os.Getenv("OFFER_SWEEP_INTERVAL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			interval = d
		} else {
			utils.LogError("Invalid OFFER_SWEEP_INTERVAL %q, using default", raw)
		}
	}
	return &OfferExpiryWorker{interval: interval}
}

// Start runs the sweep loop until the context is cancelled. The first
// sweep runs immediately.
func (w *OfferExpiryWorker) Start(ctx context.Context) {
	utils.LogInfo("Offer expiry worker started, interval %v", w.interval)

	w.sweepOnce(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			utils.LogInfo("Offer expiry worker stopped")
			return
		case <-ticker.C:
			w.sweepOnce(ctx)
		}
	}
}

// sweepOnce loads every product with a bounded offer window and persists
// all clears in a single transaction. A failed sweep is logged and retried
// on the next tick.
func (w *OfferExpiryWorker) sweepOnce(ctx context.Context) {
	var products []models.Product
	err := config.DB.WithContext(ctx).
		Where("b2c_offer_end_date IS NOT NULL OR b2b_offer_end_date IS NOT NULL").
		Find(&products).Error
	if err != nil {
		utils.LogError("Offer sweep query failed: %v", err)
		return
	}

	changed, skipped := SweepProducts(products, time.Now())
	for _, id := range skipped {
		utils.LogError("Offer sweep skipping product %s: unparseable offer dates", id)
	}
	if len(changed) == 0 {
		return
	}

	tx := config.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		utils.LogError("Offer sweep transaction failed to start: %v", tx.Error)
		return
	}
	for _, p := range changed {
		if err := tx.Model(&models.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
			"b2c_active_offer":     p.B2CActiveOffer,
			"b2c_offer_price":      p.B2COfferPrice,
			"b2c_offer_start_date": p.B2COfferStart,
			"b2c_offer_end_date":   p.B2COfferEnd,
			"b2b_active_offer":     p.B2BActiveOffer,
			"b2b_offer_price":      p.B2BOfferPrice,
			"b2b_offer_start_date": p.B2BOfferStart,
			"b2b_offer_end_date":   p.B2BOfferEnd,
		}).Error; err != nil {
			tx.Rollback()
			utils.LogError("Offer sweep update failed for product %s: %v", p.ID, err)
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		utils.LogError("Offer sweep commit failed: %v", err)
		return
	}

	utils.LogInfo("Offer sweep cleared %d expired offers", len(changed))
}

// SweepProducts applies the offer clearing rule to each product and
// returns the products that changed plus the IDs of records skipped for
// unparseable dates. It never mutates skipped records.
func SweepProducts(products []models.Product, now time.Time) (changed []models.Product, skipped []string) {
	for i := range products {
		p := &products[i]
		if utils.HasMalformedOfferDates(p) {
			skipped = append(skipped, p.ID)
			continue
		}
		if utils.RefreshProductOffers(p, now) {
			changed = append(changed, *p)
		}
	}
	return changed, skipped
}
