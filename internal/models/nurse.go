package models

import "time"

// Nurse represents the nurses table.
// AssignedBeds is the direct bed-level assignment used as the first
// resolution tier; AssignedIslands is the island-level assignment kept
// as the fallback tier.
type Nurse struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	LicenseNumber  string    `gorm:"size:50" json:"license_number,omitempty"`
	Specialization string    `gorm:"size:100" json:"specialization,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships
	User            User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	AssignedBeds    []Bed    `gorm:"many2many:nurse_beds" json:"assigned_beds,omitempty"`
	AssignedIslands []Island `gorm:"many2many:nurse_islands" json:"assigned_islands,omitempty"`
}

// TableName specifies the table name for Nurse model
func (Nurse) TableName() string {
	return "nurses"
}
