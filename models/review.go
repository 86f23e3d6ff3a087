package models

import "time"

// Review is a product review. One review per user per product, enforced by
// a unique index on (product_id, user_id).
type Review struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID string `gorm:"size:50;index;uniqueIndex:idx_product_user" json:"product_id"`
	UserID    string `gorm:"size:50;uniqueIndex:idx_product_user" json:"user_id"`
	UserName  string `gorm:"size:255" json:"user_name"`
	Rating    int    `gorm:"not null" json:"rating"`
	Comment   string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}
