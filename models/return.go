package models

import "time"

// Return statuses
const (
	ReturnStatusPending  = "pending"
	ReturnStatusApproved = "approved"
	ReturnStatusRejected = "rejected"
)

// Return is a return/refund request against an order.
type Return struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OrderID     string `gorm:"size:50;index;not null" json:"order_id"`
	UserEmail   string `gorm:"size:255;index" json:"user_email"`
	ProductID   string `gorm:"size:50" json:"product_id"`
	Reason      string `gorm:"size:255;not null" json:"reason"`
	Description string `gorm:"type:text" json:"description"`
	Images      string `gorm:"type:text" json:"images"` // JSON array of upload paths
	Status      string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
