package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a registered patient account. Patients are never
// hard-deleted; deactivation flips IsActive.
type Patient struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FullName     string    `gorm:"type:varchar(100);not null" json:"full_name"`
	MobileNumber string    `gorm:"type:varchar(15);uniqueIndex;not null" json:"mobile_number"`
	Email        string    `gorm:"type:varchar(120)" json:"email,omitempty"`
	Password     string    `gorm:"type:varchar(255);not null" json:"-"`
	IsActive     bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
