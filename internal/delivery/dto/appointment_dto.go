package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type BookAppointmentRequest struct {
	DoctorID        uuid.UUID `json:"doctor_id" validate:"required"`
	AppointmentDate string    `json:"appointment_date" validate:"required"`
	AppointmentTime string    `json:"appointment_time" validate:"required"`
	Reason          string    `json:"reason" validate:"omitempty,max=1000"`
}

// CreateAppointmentRequest is the receptionist-side booking form; the
// patient is chosen explicitly.
type CreateAppointmentRequest struct {
	PatientID       uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID        uuid.UUID `json:"doctor_id" validate:"required"`
	AppointmentDate string    `json:"appointment_date" validate:"required"`
	AppointmentTime string    `json:"appointment_time" validate:"required"`
	Reason          string    `json:"reason" validate:"omitempty,max=1000"`
}

// BookPaidAppointmentRequest carries the gateway checkout proof alongside
// the booking details.
type BookPaidAppointmentRequest struct {
	BookAppointmentRequest
	GatewayOrderID   string `json:"razorpay_order_id" validate:"required"`
	GatewayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	GatewaySignature string `json:"razorpay_signature" validate:"required"`
	Amount           string `json:"amount" validate:"required"`
	Currency         string `json:"currency" validate:"omitempty,len=3"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled confirmed under_consultation completed cancelled"`
}

type EditAppointmentRequest struct {
	AppointmentDate string `json:"appointment_date" validate:"required"`
	AppointmentTime string `json:"appointment_time" validate:"required"`
	Reason          string `json:"reason" validate:"omitempty,max=1000"`
	Status          string `json:"status" validate:"required,oneof=scheduled confirmed under_consultation completed cancelled"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID        `json:"id"`
	PatientID       uuid.UUID        `json:"patient_id"`
	DoctorID        uuid.UUID        `json:"doctor_id"`
	PatientName     string           `json:"patient_name"`
	DoctorName      string           `json:"doctor_name,omitempty"`
	Specialization  string           `json:"specialization,omitempty"`
	AppointmentDate string           `json:"appointment_date"`
	AppointmentTime string           `json:"appointment_time"`
	Reason          string           `json:"reason,omitempty"`
	Status          string           `json:"status"`
	DisplayStatus   string           `json:"display_status"`
	Payment         *PaymentResponse `json:"payment,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type AvailabilityResponse struct {
	DoctorID  uuid.UUID `json:"doctor_id"`
	Date      string    `json:"date"`
	Available bool      `json:"available"`
	Reason    string    `json:"reason,omitempty"`

	SlotsRemaining int `json:"slots_remaining,omitempty"`
}
