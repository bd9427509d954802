package models

import "time"

// PlatformRole defines the platform-wide role of a user account.
type PlatformRole string

const (
	// PlatformRoleAdmin grants access to the admin back-office.
	PlatformRoleAdmin PlatformRole = "admin"
	// PlatformRoleManager marks an academy operator account.
	PlatformRoleManager PlatformRole = "manager"
	// PlatformRoleUser is the default role for new signups.
	PlatformRoleUser PlatformRole = "user"
)

// ValidPlatformRole reports whether s is a known platform role.
func ValidPlatformRole(s string) bool {
	switch PlatformRole(s) {
	case PlatformRoleAdmin, PlatformRoleManager, PlatformRoleUser:
		return true
	}
	return false
}

// User is a registered platform account.
type User struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	FullName  string       `gorm:"size:120;not null" json:"full_name"`
	Email     string       `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string       `gorm:"size:255;not null" json:"-"`
	Role      PlatformRole `gorm:"type:varchar(20);not null;default:'user';index" json:"role"`
	AcademyID *uint        `json:"academy_id"`
	Academy   *Academy     `gorm:"foreignKey:AcademyID" json:"academy,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == PlatformRoleAdmin
}
