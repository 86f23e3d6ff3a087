package models

import (
	"time"

	"gorm.io/gorm"
)

// Account types
const (
	AccountTypeB2C = "b2c"
	AccountTypeB2B = "b2b"
)

// User is a customer account. B2B accounts stay locked out of login until
// their application is approved.
type User struct {
	ID                string     `gorm:"primaryKey;size:50" json:"id"`
	Email             string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash      string     `gorm:"column:password_hash;size:255" json:"-"`
	FullName          string     `gorm:"size:255" json:"full_name"`
	PhoneNumber       string     `gorm:"size:20;index" json:"phone_number"`
	AccountType       string     `gorm:"size:10;default:'b2c'" json:"account_type"`
	GoogleID          string     `gorm:"size:255" json:"-"`
	RawUserMetaData   string     `gorm:"type:text" json:"-"`
	ResetToken        string     `gorm:"size:255" json:"-"`
	ResetTokenExpires *time.Time `json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
