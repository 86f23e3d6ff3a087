package models

import "time"

// B2B application statuses
const (
	B2BStatusPending  = "pending_approval"
	B2BStatusApproved = "approved"
	B2BStatusRejected = "rejected"
)

// B2BApplication holds the business details and documents submitted with a
// B2B registration. The account cannot log in until it is approved.
type B2BApplication struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	UserID         string `gorm:"size:50;uniqueIndex;not null" json:"user_id"`
	BusinessName   string `gorm:"size:255;not null" json:"business_name"`
	GSTIN          string `gorm:"size:20" json:"gstin"`
	PAN            string `gorm:"size:15" json:"pan"`
	BusinessType   string `gorm:"size:100" json:"business_type"`
	GSTCertificate string `gorm:"size:255" json:"gst_certificate"`
	LicenceDoc     string `gorm:"size:255" json:"licence_doc"`
	Status         string `gorm:"size:30;default:'pending_approval'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
