package repository

import (
	"healthcareplus/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *entity.Payment) error
	FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.Payment, error)
	// FindAll returns payment records newest first, optionally filtered by
	// patient name substring.
	FindAll(db *gorm.DB, patientNameSearch string) ([]entity.Payment, error)
}
