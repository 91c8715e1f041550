package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreatePatientRequest is the receptionist-side walk-in registration form.
type CreatePatientRequest struct {
	FullName     string `json:"full_name" validate:"required,min=2,max=100"`
	MobileNumber string `json:"mobile_number" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	Password     string `json:"password" validate:"omitempty,min=8"`
}

type UpdatePatientRequest struct {
	FullName     string `json:"full_name" validate:"omitempty,min=2,max=100"`
	MobileNumber string `json:"mobile_number" validate:"omitempty"`
	Email        string `json:"email" validate:"omitempty,email"`
	IsActive     *bool  `json:"is_active"`
}

// Response DTOs

type PatientResponse struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	MobileNumber string    `json:"mobile_number"`
	Email        string    `json:"email,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
