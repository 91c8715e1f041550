package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateOrderRequest struct {
	Amount  string `json:"amount" validate:"required"`
	Receipt string `json:"receipt" validate:"omitempty,max=100"`
}

// Response DTOs

type OrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt,omitempty"`
	Status   string `json:"status,omitempty"`
}

type PaymentResponse struct {
	ID               uuid.UUID `json:"id"`
	AppointmentID    uuid.UUID `json:"appointment_id"`
	GatewayPaymentID string    `json:"gateway_payment_id"`
	GatewayOrderID   string    `json:"gateway_order_id"`
	Amount           string    `json:"amount"`
	Currency         string    `json:"currency"`
	Status           string    `json:"status"`
	PatientName      string    `json:"patient_name,omitempty"`
	DoctorName       string    `json:"doctor_name,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int               `json:"total"`
}
