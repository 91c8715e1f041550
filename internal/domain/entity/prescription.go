package entity

import (
	"time"

	"github.com/google/uuid"
)

// Prescription is written by a doctor after a consultation. It is owned by
// one appointment and immutable once created; there is no update path.
type Prescription struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"appointment_id"`
	DoctorID      uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Instructions  string    `gorm:"type:text" json:"instructions,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Appointment Appointment            `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Doctor      Doctor                 `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Medicines   []PrescriptionMedicine `gorm:"foreignKey:PrescriptionID" json:"medicines,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// PrescriptionMedicine is one ordered medicine entry on a prescription.
type PrescriptionMedicine struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PrescriptionID uuid.UUID `gorm:"type:uuid;not null;index" json:"prescription_id"`
	Position       int       `gorm:"not null" json:"position"`
	Name           string    `gorm:"type:varchar(200);not null" json:"name"`
	Dosage         string    `gorm:"type:varchar(100)" json:"dosage,omitempty"`
	Frequency      string    `gorm:"type:varchar(100)" json:"frequency,omitempty"`
	Duration       string    `gorm:"type:varchar(100)" json:"duration,omitempty"`
}

func (PrescriptionMedicine) TableName() string {
	return "prescription_medicines"
}
