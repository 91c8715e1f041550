package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type MedicineEntry struct {
	Name      string `json:"name" validate:"required,max=200"`
	Dosage    string `json:"dosage" validate:"omitempty,max=100"`
	Frequency string `json:"frequency" validate:"omitempty,max=100"`
	Duration  string `json:"duration" validate:"omitempty,max=100"`
}

type CreatePrescriptionRequest struct {
	Instructions string          `json:"instructions" validate:"omitempty,max=2000"`
	Medicines    []MedicineEntry `json:"medicines" validate:"required,min=1,dive"`
}

// Response DTOs

type MedicineResponse struct {
	Position  int    `json:"position"`
	Name      string `json:"name"`
	Dosage    string `json:"dosage,omitempty"`
	Frequency string `json:"frequency,omitempty"`
	Duration  string `json:"duration,omitempty"`
}

type PrescriptionResponse struct {
	ID            uuid.UUID          `json:"id"`
	AppointmentID uuid.UUID          `json:"appointment_id"`
	DoctorID      uuid.UUID          `json:"doctor_id"`
	DoctorName    string             `json:"doctor_name,omitempty"`
	Instructions  string             `json:"instructions,omitempty"`
	Medicines     []MedicineResponse `json:"medicines"`
	CreatedAt     time.Time          `json:"created_at"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}
