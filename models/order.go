package models

import "time"

// Order statuses
const (
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

// Payment statuses
const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
	PaymentStatusFailed  = "Failed"
)

// Order is a placed order. Line items are serialized JSON, matching the
// document shape the storefront sends.
type Order struct {
	ID            string  `gorm:"primaryKey;size:50" json:"id"`
	Customer      string  `gorm:"size:255" json:"customer"`
	Email         string  `gorm:"size:255;index" json:"email"`
	Phone         string  `gorm:"size:20" json:"phone"`
	Amount        float64 `gorm:"not null" json:"amount"`
	Items         string  `gorm:"type:text" json:"items"`
	ItemsCount    int     `gorm:"default:0" json:"items_count"`
	Type          string  `gorm:"size:10;default:'b2c'" json:"type"`
	Status        string  `gorm:"size:50;default:'Processing'" json:"status"`
	PaymentStatus string  `gorm:"size:50;default:'Pending'" json:"payment_status"`
	PaymentMethod string  `gorm:"size:50" json:"payment_method"`
	Address       string  `gorm:"type:text" json:"address"`

	RazorpayOrderID string `gorm:"size:100;index" json:"razorpay_order_id,omitempty"`

	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
