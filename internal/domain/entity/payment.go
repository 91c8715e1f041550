package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus mirrors the gateway-side state recorded at booking time.
type PaymentStatus string

const (
	PaymentStatusCaptured PaymentStatus = "captured"
	PaymentStatusFailed   PaymentStatus = "failed"
)

// Payment records a gateway-verified payment for one appointment. The
// unique index on AppointmentID enforces at most one payment per
// appointment at the storage layer.
type Payment struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"appointment_id"`
	GatewayPaymentID string          `gorm:"type:varchar(100);not null" json:"gateway_payment_id"`
	GatewayOrderID   string          `gorm:"type:varchar(100);not null" json:"gateway_order_id"`
	Amount           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Currency         string          `gorm:"type:varchar(3);not null;default:'INR'" json:"currency"`
	Status           PaymentStatus   `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}
