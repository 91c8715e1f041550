package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAppointmentsPerDay applies when a doctor row predates the
// capacity column or carries no explicit value.
const DefaultAppointmentsPerDay = 10

// Doctor represents a doctor account. Self-registered doctors start
// unverified; only verified and active doctors are bookable.
type Doctor struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FullName            string    `gorm:"type:varchar(100);not null" json:"full_name"`
	MobileNumber        string    `gorm:"type:varchar(15);uniqueIndex;not null" json:"mobile_number"`
	Email               string    `gorm:"type:varchar(120)" json:"email,omitempty"`
	SpecializationID    int       `gorm:"not null;index" json:"specialization_id"`
	LicenseNumber       string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	ExperienceYears     int       `gorm:"not null" json:"experience_years"`
	Qualification       string    `gorm:"type:varchar(200);not null" json:"qualification"`
	HospitalAffiliation string    `gorm:"type:varchar(200)" json:"hospital_affiliation,omitempty"`
	Password            string    `gorm:"type:varchar(255);not null" json:"-"`
	IsActive            bool      `gorm:"not null;default:true;index" json:"is_active"`
	IsVerified          bool      `gorm:"not null;default:false;index" json:"is_verified"`
	AppointmentsPerDay  int       `gorm:"not null;default:10" json:"appointments_per_day"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Specialization Specialization `gorm:"foreignKey:SpecializationID" json:"specialization,omitempty"`
	Appointments   []Appointment  `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// IsBookable reports whether the doctor may receive new appointments.
// The column default covers "capacity unset"; a stored zero or negative
// value means the doctor never accepts bookings.
func (d *Doctor) IsBookable() bool {
	return d.IsActive && d.IsVerified
}
