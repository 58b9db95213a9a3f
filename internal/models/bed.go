package models

import "time"

// Bed represents an addressable physical location a call is raised from.
// A bed belongs to exactly one island. Occupancy is tracked on the patient
// side (patients.bed_id) so the Bed<->Patient link is a single edge.
type Bed struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BedNumber string    `gorm:"size:50;not null;uniqueIndex:idx_island_bed_number" json:"bed_number"`
	IslandID  uint      `gorm:"not null;index;uniqueIndex:idx_island_bed_number" json:"island_id"`
	QRToken   string    `gorm:"size:64;uniqueIndex" json:"qr_token,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Island Island `gorm:"foreignKey:IslandID" json:"island,omitempty"`
}

// TableName specifies the table name for Bed model
func (Bed) TableName() string {
	return "beds"
}
