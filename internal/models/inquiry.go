package models

import "time"

// InquiryStatus defines lifecycle states for academy-introduction inquiries.
type InquiryStatus string

const (
	// InquiryStatusPending indicates the inquiry is awaiting review.
	InquiryStatusPending InquiryStatus = "pending"
	// InquiryStatusApproved indicates the inquiry was accepted and an academy
	// was provisioned. This state is terminal.
	InquiryStatusApproved InquiryStatus = "approved"
	// InquiryStatusRejected indicates the inquiry was declined.
	InquiryStatusRejected InquiryStatus = "rejected"
	// InquiryStatusOnHold indicates the inquiry is parked for later review.
	InquiryStatusOnHold InquiryStatus = "on_hold"
)

// ValidInquiryStatus reports whether s is a known inquiry status.
func ValidInquiryStatus(s string) bool {
	switch InquiryStatus(s) {
	case InquiryStatusPending, InquiryStatusApproved, InquiryStatusRejected, InquiryStatusOnHold:
		return true
	}
	return false
}

// Inquiry is a submitted request from a prospective academy to be onboarded
// onto the platform. Non-terminal statuses may move freely among each other;
// approved is final and carries a provisioned academy reference.
type Inquiry struct {
	ID                uint          `gorm:"primaryKey" json:"id"`
	AcademyName       string        `gorm:"size:120;not null" json:"academy_name"`
	FullName          string        `gorm:"size:120;not null" json:"full_name"`
	Email             string        `gorm:"size:255;not null" json:"email"`
	Phone             string        `gorm:"size:40;not null" json:"phone"`
	Content           string        `gorm:"type:text" json:"content"`
	Status            InquiryStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	AdminComment      string        `gorm:"type:text" json:"admin_comment"`
	ProcessedByUserID *uint         `json:"processed_by_user_id"`
	ProcessedByUser   *User         `gorm:"foreignKey:ProcessedByUserID" json:"processed_by_user,omitempty"`
	ProcessedAt       *time.Time    `json:"processed_at"`
	AcademyID         *uint         `json:"academy_id"`
	Academy           *Academy      `gorm:"foreignKey:AcademyID" json:"academy,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Inquiry) TableName() string {
	return "inquiries"
}
