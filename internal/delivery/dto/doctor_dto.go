package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateDoctorRequest is the admin-side form; doctors created here start
// verified.
type CreateDoctorRequest struct {
	FullName            string `json:"full_name" validate:"required,min=2,max=100"`
	MobileNumber        string `json:"mobile_number" validate:"required"`
	Email               string `json:"email" validate:"omitempty,email"`
	SpecializationID    int    `json:"specialization_id" validate:"required,min=1"`
	LicenseNumber       string `json:"license_number" validate:"required,max=50"`
	ExperienceYears     int    `json:"experience_years" validate:"gte=0,lte=50"`
	Qualification       string `json:"qualification" validate:"required,max=200"`
	HospitalAffiliation string `json:"hospital_affiliation" validate:"omitempty,max=200"`
	Password            string `json:"password" validate:"required,min=8"`
	AppointmentsPerDay  int    `json:"appointments_per_day" validate:"omitempty,gte=1,lte=50"`
}

type UpdateDoctorRequest struct {
	FullName            string `json:"full_name" validate:"omitempty,min=2,max=100"`
	MobileNumber        string `json:"mobile_number" validate:"omitempty"`
	Email               string `json:"email" validate:"omitempty,email"`
	SpecializationID    int    `json:"specialization_id" validate:"omitempty,min=1"`
	ExperienceYears     *int   `json:"experience_years" validate:"omitempty,gte=0,lte=50"`
	Qualification       string `json:"qualification" validate:"omitempty,max=200"`
	HospitalAffiliation string `json:"hospital_affiliation" validate:"omitempty,max=200"`
	AppointmentsPerDay  *int   `json:"appointments_per_day" validate:"omitempty,gte=1,lte=50"`
	IsActive            *bool  `json:"is_active"`
}

// Response DTOs

type DoctorResponse struct {
	ID                  uuid.UUID `json:"id"`
	FullName            string    `json:"full_name"`
	MobileNumber        string    `json:"mobile_number"`
	Email               string    `json:"email,omitempty"`
	SpecializationID    int       `json:"specialization_id"`
	Specialization      string    `json:"specialization,omitempty"`
	LicenseNumber       string    `json:"license_number"`
	ExperienceYears     int       `json:"experience_years"`
	Qualification       string    `json:"qualification"`
	HospitalAffiliation string    `json:"hospital_affiliation,omitempty"`
	IsActive            bool      `json:"is_active"`
	IsVerified          bool      `json:"is_verified"`
	AppointmentsPerDay  int       `json:"appointments_per_day"`
	CreatedAt           time.Time `json:"created_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
