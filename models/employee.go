package models

import (
	"time"

	"gorm.io/gorm"
)

// Employee roles
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Employee is an admin-side account. Password resets by email OTP persist
// the OTP and its expiry on the row.
type Employee struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Email       string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password    string `gorm:"size:255;not null" json:"-"`
	Role        string `gorm:"size:20;default:'staff'" json:"role"`
	Status      string `gorm:"size:20;default:'active'" json:"status"`
	Phone       string `gorm:"size:20" json:"phone"`
	Address     string `gorm:"size:255" json:"address"`
	City        string `gorm:"size:100" json:"city"`
	State       string `gorm:"size:100" json:"state"`
	Pincode     string `gorm:"size:10" json:"pincode"`
	Permissions string `gorm:"type:text" json:"permissions"`

	LastLogin       *time.Time `json:"last_login"`
	ResetOTP        string     `gorm:"size:10" json:"-"`
	ResetOTPExpires *time.Time `json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
