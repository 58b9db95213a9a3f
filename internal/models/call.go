package models

import "time"

// Call status values. ACKNOWLEDGED and EXPIRED are terminal.
const (
	CallStatusActive       = "ACTIVE"
	CallStatusAcknowledged = "ACKNOWLEDGED"
	CallStatusExpired      = "EXPIRED"
)

// Call represents the calls table: a timestamped alert linking a bed, its
// occupant (if any) and the nurse resolved at creation time. The nurse
// reference never changes after creation.
type Call struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BedID     uint      `gorm:"not null;index" json:"bed_id"`
	PatientID *uint     `gorm:"index" json:"patient_id,omitempty"`
	NurseID   uint      `gorm:"not null;index" json:"nurse_id"`
	Status    string    `gorm:"size:20;not null;index" json:"status"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`

	// Relationships
	Bed     Bed      `gorm:"foreignKey:BedID" json:"bed,omitempty"`
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Nurse   Nurse    `gorm:"foreignKey:NurseID" json:"nurse,omitempty"`
}

// TableName specifies the table name for Call model
func (Call) TableName() string {
	return "calls"
}
