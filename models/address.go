package models

import "time"

// Address is a saved delivery address. Each user has at most one default.
type Address struct {
	ID           string `gorm:"primaryKey;size:50" json:"id"`
	UserID       string `gorm:"size:50;index;not null" json:"user_id"`
	Label        string `gorm:"size:50" json:"label"`
	FullName     string `gorm:"size:255" json:"full_name"`
	Phone        string `gorm:"size:20" json:"phone"`
	AddressLine1 string `gorm:"size:255" json:"address_line1"`
	AddressLine2 string `gorm:"size:255" json:"address_line2"`
	City         string `gorm:"size:100" json:"city"`
	State        string `gorm:"size:100" json:"state"`
	Pincode      string `gorm:"size:10" json:"pincode"`
	Country      string `gorm:"size:100;default:'India'" json:"country"`
	IsDefault    bool   `gorm:"default:false" json:"is_default"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
