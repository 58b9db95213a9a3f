package models

import "time"

// Patient represents the patients table.
// BedID is the owning side of the Bed<->Patient edge; the unique index
// guarantees a bed holds at most one patient.
type Patient struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	UserID              uint       `gorm:"not null;uniqueIndex" json:"user_id"`
	BedID               *uint      `gorm:"uniqueIndex" json:"bed_id,omitempty"`
	Diagnosis           string     `gorm:"size:1000" json:"diagnosis,omitempty"`
	Treatment           string     `gorm:"size:2000" json:"treatment,omitempty"`
	MedicalRecordNumber string     `gorm:"size:50" json:"medical_record_number,omitempty"`
	AdmissionDate       *time.Time `json:"admission_date,omitempty"`
	DischargeDate       *time.Time `json:"discharge_date,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Bed  *Bed `gorm:"foreignKey:BedID" json:"bed,omitempty"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}
