package models

import (
	"time"
)

// Product statuses
const (
	ProductStatusDraft     = "Draft"
	ProductStatusPublished = "Published"
	ProductStatusArchived  = "Archived"
)

// Pricing segments
const (
	SegmentConsumer = "b2c"
	SegmentBusiness = "b2b"
)

// Product represents a catalog item with independent consumer (B2C) and
// business (B2B) pricing. Offer windows are stored as raw strings because
// legacy rows carry mixed date formats; they are parsed tolerantly at
// evaluation time.
type Product struct {
	ID          string `gorm:"primaryKey;size:50" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Category    string `gorm:"size:100" json:"category"`
	Description string `gorm:"type:text" json:"description"`
	Status      string `gorm:"size:50;default:'Draft'" json:"status"`
	Stock       int    `gorm:"default:0" json:"stock"`
	Image       string `gorm:"type:text" json:"image"`

	// Base pricing
	B2CPrice       float64 `gorm:"default:0" json:"b2c_price"`
	B2BPrice       float64 `gorm:"default:0" json:"b2b_price"`
	CompareAtPrice float64 `gorm:"default:0" json:"compare_at_price"` // MRP

	// Consumer segment offer fields. ActiveOffer is the windowed offer
	// percent, Discount the standing (non-windowed) discount percent,
	// OfferPrice the cached derived sale price.
	B2CActiveOffer float64 `gorm:"default:0" json:"b2c_active_offer"`
	B2CDiscount    float64 `gorm:"default:0" json:"b2c_discount"`
	B2COfferPrice  float64 `gorm:"default:0" json:"b2c_offer_price"`
	B2COfferStart  *string `gorm:"column:b2c_offer_start_date" json:"b2c_offer_start_date"`
	B2COfferEnd    *string `gorm:"column:b2c_offer_end_date" json:"b2c_offer_end_date"`

	// Business segment offer fields
	B2BActiveOffer float64 `gorm:"default:0" json:"b2b_active_offer"`
	B2BDiscount    float64 `gorm:"default:0" json:"b2b_discount"`
	B2BOfferPrice  float64 `gorm:"default:0" json:"b2b_offer_price"`
	B2BOfferStart  *string `gorm:"column:b2b_offer_start_date" json:"b2b_offer_start_date"`
	B2BOfferEnd    *string `gorm:"column:b2b_offer_end_date" json:"b2b_offer_end_date"`

	Attributes []ProductAttribute `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"attributes,omitempty"`
	Variants   []ProductVariant   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductAttribute is a free-form name/value pair attached to a product
type ProductAttribute struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID string `gorm:"size:50;index" json:"product_id"`
	Name      string `gorm:"size:100" json:"name"`
	Value     string `gorm:"size:255" json:"value"`
}

// ProductVariant is a color/stock variant of a product
type ProductVariant struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID string `gorm:"size:50;index" json:"product_id"`
	Color     string `gorm:"size:50" json:"color"`
	ColorCode string `gorm:"size:20" json:"color_code"`
	Stock     int    `gorm:"default:0" json:"stock"`
}
