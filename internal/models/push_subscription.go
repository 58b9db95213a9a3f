package models

import "time"

// PushSubscription holds a browser push endpoint for a nurse.
// A nurse may register several endpoints (one per device/browser).
type PushSubscription struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	NurseID   uint      `gorm:"not null;index" json:"nurse_id"`
	Endpoint  string    `gorm:"type:text;not null" json:"endpoint"`
	P256dh    string    `gorm:"column:p256dh;size:255;not null" json:"p256dh"`
	Auth      string    `gorm:"column:auth_key;size:255;not null" json:"auth"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Nurse Nurse `gorm:"foreignKey:NurseID" json:"nurse,omitempty"`
}

// TableName specifies the table name for PushSubscription model
func (PushSubscription) TableName() string {
	return "push_subscriptions"
}
