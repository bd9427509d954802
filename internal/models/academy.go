package models

import "time"

// Academy is an organizational tenant record created when an inquiry is
// approved. No owning manager is linked at creation time; linking happens in a
// later administrative step.
type Academy struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Academy) TableName() string {
	return "academies"
}
